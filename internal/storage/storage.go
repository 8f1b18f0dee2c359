// Package storage persists the root document in a key/value backend.
package storage

import (
	"context"
	"fmt"
	"strings"
)

// Backend is a durable key/value store holding whole serialized documents.
// Set replaces the value for key in one step; readers never see a partial write.
type Backend interface {
	// Get returns the value for key. ok is false when the key has never been written.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Close releases any resources held by the backend.
	Close() error
}

// Open creates the backend named by a storage URL:
//
//	memory://                  in-process map
//	file://<dir>               one JSON file per key in dir
//	sqlite://<path>            SQLite database file (":memory:" allowed)
//	postgres://... | postgresql://...   PostgreSQL database
func Open(ctx context.Context, storageURL string) (Backend, error) {
	scheme, rest, ok := strings.Cut(storageURL, "://")
	if !ok {
		return nil, fmt.Errorf("invalid storage URL %q: missing scheme", storageURL)
	}

	switch scheme {
	case "memory":
		return NewMemoryBackend(), nil
	case "file":
		if rest == "" {
			return nil, fmt.Errorf("invalid storage URL %q: missing directory", storageURL)
		}
		b, err := NewFileBackend(rest)
		if err != nil {
			return nil, err
		}
		return b, nil
	case "sqlite":
		if rest == "" {
			return nil, fmt.Errorf("invalid storage URL %q: missing database path", storageURL)
		}
		b, err := OpenSQLite(ctx, rest)
		if err != nil {
			return nil, err
		}
		return b, nil
	case "postgres", "postgresql":
		b, err := OpenPostgres(ctx, storageURL)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unsupported storage scheme %q", scheme)
	}
}
