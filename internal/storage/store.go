// Package storage provides the key-value stores that hold the saved candidates.
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
)

// Store is a string key-value store. Implementations must make a Set
// visible to subsequent Gets as soon as it returns.
type Store interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendRedis  Backend = "redis"
)

// Options selects and configures a Store.
type Options struct {
	Backend   Backend
	Path      string
	RedisAddr string
	RedisDB   int
	Logger    *log.Logger
}

// New opens the store described by opts.
func New(opts Options) (Store, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	switch opts.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile, "":
		return NewFileStore(opts.Path, opts.Logger), nil
	case BackendRedis:
		return NewRedisStore(opts.RedisAddr, opts.RedisDB), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", opts.Backend)
	}
}
