// Package kv defines the key-value abstraction the JSON repositories are built
// on, so the backing medium (flat files, an embedded store) can be swapped
// without touching store logic.
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value exists for the key.
var ErrKeyNotFound = errors.New("key not found")

// Entry is one key/value pair returned by List.
type Entry struct {
	Key   string
	Value []byte
}

// Store is a minimal key-value store. Keys are slash-separated paths.
// List returns entries whose key starts with prefix, sorted by key ascending.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	List(ctx context.Context, prefix string) ([]Entry, error)
}
