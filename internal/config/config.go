// Package config loads the candidate-search configuration from a TOML file
// and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// AppName names the config directory and env prefix.
const AppName = "candidate-search"

// CandidateCap is the most candidates a single search may show.
const CandidateCap = 10

// Config represents the full candidate-search configuration
type Config struct {
	GitHub  GitHubConfig  `mapstructure:"github" toml:"github"`
	Search  SearchConfig  `mapstructure:"search" toml:"search"`
	Storage StorageConfig `mapstructure:"storage" toml:"storage"`
	Log     LogConfig     `mapstructure:"log" toml:"log"`
}

// GitHubConfig contains GitHub API settings
type GitHubConfig struct {
	API     string `mapstructure:"api" toml:"api"`           // "rest" or "graphql"
	Token   string `mapstructure:"token" toml:"token"`       // falls back to GITHUB_TOKEN
	BaseURL string `mapstructure:"base_url" toml:"base_url"` // GitHub Enterprise root
}

// SearchConfig controls which candidates are loaded and how
type SearchConfig struct {
	Query         string `mapstructure:"query" toml:"query"`
	Since         int64  `mapstructure:"since" toml:"since"`
	MaxCandidates int    `mapstructure:"max_candidates" toml:"max_candidates"`
	Mode          string `mapstructure:"mode" toml:"mode"` // "lazy" or "eager"
	Concurrency   int    `mapstructure:"concurrency" toml:"concurrency"`
}

// StorageConfig selects where accepted candidates are kept
type StorageConfig struct {
	Backend   string `mapstructure:"backend" toml:"backend"` // "file", "redis" or "memory"
	Path      string `mapstructure:"path" toml:"path"`
	Key       string `mapstructure:"key" toml:"key"`
	RedisAddr string `mapstructure:"redis_addr" toml:"redis_addr"`
	RedisDB   int    `mapstructure:"redis_db" toml:"redis_db"`
}

// LogConfig contains logging settings
type LogConfig struct {
	File string `mapstructure:"file" toml:"file"`
}

// Dir returns the directory holding the config file and default data files.
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, AppName)
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the config file at path (DefaultPath when empty) and overlays
// environment variables. A missing file at the default location is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	if path == "" {
		if _, err := os.Stat(DefaultPath()); err == nil {
			path = DefaultPath()
		}
	}

	v.SetEnvPrefix(strings.ReplaceAll(AppName, "-", "_"))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("github.token", "CANDIDATE_SEARCH_GITHUB_TOKEN", "GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// setDefaults registers every key so that AutomaticEnv can override it
// even when the config file does not mention it.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("github.api", d.GitHub.API)
	v.SetDefault("github.token", d.GitHub.Token)
	v.SetDefault("github.base_url", d.GitHub.BaseURL)
	v.SetDefault("search.query", d.Search.Query)
	v.SetDefault("search.since", d.Search.Since)
	v.SetDefault("search.max_candidates", d.Search.MaxCandidates)
	v.SetDefault("search.mode", d.Search.Mode)
	v.SetDefault("search.concurrency", d.Search.Concurrency)
	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("storage.key", d.Storage.Key)
	v.SetDefault("storage.redis_addr", d.Storage.RedisAddr)
	v.SetDefault("storage.redis_db", d.Storage.RedisDB)
	v.SetDefault("log.file", d.Log.File)
}

// applyDefaults sets default values for unset fields
func applyDefaults(cfg *Config) {
	if cfg.GitHub.API == "" {
		cfg.GitHub.API = "rest"
	}

	if cfg.Search.MaxCandidates == 0 {
		cfg.Search.MaxCandidates = CandidateCap
	}

	if cfg.Search.Mode == "" {
		cfg.Search.Mode = "lazy"
	}

	if cfg.Search.Concurrency == 0 {
		cfg.Search.Concurrency = 4
	}

	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "file"
	}

	if cfg.Storage.Path == "" {
		cfg.Storage.Path = filepath.Join(Dir(), "saved.json")
	}

	if cfg.Storage.Key == "" {
		cfg.Storage.Key = "savedCandidates"
	}

	if cfg.Storage.RedisAddr == "" {
		cfg.Storage.RedisAddr = "localhost:6379"
	}

	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(Dir(), AppName+".log")
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validAPIs := map[string]bool{"rest": true, "graphql": true}
	if !validAPIs[c.GitHub.API] {
		return fmt.Errorf("invalid github api: %s (must be rest or graphql)", c.GitHub.API)
	}

	if c.GitHub.API == "graphql" && c.GitHub.Token == "" {
		return fmt.Errorf("github token is required for the graphql api")
	}

	validModes := map[string]bool{"lazy": true, "eager": true}
	if !validModes[c.Search.Mode] {
		return fmt.Errorf("invalid search mode: %s (must be lazy or eager)", c.Search.Mode)
	}

	if c.Search.MaxCandidates < 1 || c.Search.MaxCandidates > CandidateCap {
		return fmt.Errorf("search.max_candidates must be between 1 and %d, got %d", CandidateCap, c.Search.MaxCandidates)
	}

	if c.Search.Concurrency < 1 {
		return fmt.Errorf("search.concurrency must be positive, got %d", c.Search.Concurrency)
	}

	validBackends := map[string]bool{"file": true, "redis": true, "memory": true}
	if !validBackends[c.Storage.Backend] {
		return fmt.Errorf("invalid storage backend: %s (must be file, redis, or memory)", c.Storage.Backend)
	}

	return nil
}

// Write stores cfg as TOML at path, creating parent directories.
func Write(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
