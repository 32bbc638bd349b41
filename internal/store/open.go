package store

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Options selects and configures a Store backend.
type Options struct {
	Backend       string
	FilePath      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PostgresDSN   string
}

// Open builds the configured backend. The returned func releases whatever
// the backend holds open and is safe to call exactly once.
func Open(ctx context.Context, opts Options) (Store, func(), error) {
	switch opts.Backend {
	case BackendMemory:
		return NewMemory(), func() {}, nil
	case BackendFile:
		f, err := NewFile(opts.FilePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open file store %s: %w", opts.FilePath, err)
		}
		return f, func() {}, nil
	case BackendRedis:
		r := NewRedis(opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
		if err := r.Ping(ctx); err != nil {
			_ = r.Close()
			return nil, nil, fmt.Errorf("ping redis %s: %w", opts.RedisAddr, err)
		}
		return r, func() { _ = r.Close() }, nil
	case BackendPostgres:
		p, err := NewPostgres(ctx, opts.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return p, p.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}
