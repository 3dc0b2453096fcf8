package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/naka-gawa/candidate-search/internal/config"
	"github.com/naka-gawa/candidate-search/internal/gateway"
	"github.com/naka-gawa/candidate-search/internal/storage"
	"github.com/spf13/cobra"
)

// loadConfig reads the config named by --config and validates it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger returns a logger writing to w when verbose is set, and
// discarding everything otherwise.
func newLogger(cmd *cobra.Command, w io.Writer) *log.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
	if verbose {
		logger.SetOutput(w)
	}
	return logger
}

// openLogFile opens the log file used while the terminal UI owns the screen.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

func newStore(cfg *config.Config, logger *log.Logger) (storage.Store, error) {
	return storage.New(storage.Options{
		Backend:   storage.Backend(cfg.Storage.Backend),
		Path:      cfg.Storage.Path,
		RedisAddr: cfg.Storage.RedisAddr,
		RedisDB:   cfg.Storage.RedisDB,
		Logger:    logger,
	})
}

// closeStore releases stores holding connections.
func closeStore(store storage.Store, logger *log.Logger) {
	if c, ok := store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			logger.Printf("Failed to close store: %v", err)
		}
	}
}

func newFetcher(cfg *config.Config, logger *log.Logger) (gateway.Fetcher, error) {
	return gateway.NewGitHubGateway(fetcherOptions(cfg), logger)
}

// fetcherOptions sizes each search page to the candidate cap so no more
// users are fetched than the session can show.
func fetcherOptions(cfg *config.Config) gateway.Options {
	return gateway.Options{
		Token:   cfg.GitHub.Token,
		BaseURL: cfg.GitHub.BaseURL,
		API:     gateway.API(cfg.GitHub.API),
		Query:   cfg.Search.Query,
		Since:   cfg.Search.Since,
		PerPage: cfg.Search.MaxCandidates,
	}
}
