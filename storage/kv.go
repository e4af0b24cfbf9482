// Package storage holds the key-value stores the books are persisted to.
//
// The books are two independent JSON documents, each stored under its own key.
// A KV only moves bytes: encoding is the caller's business.
package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// KV is a minimal key-value store.
type KV interface {
	// Get returns the value stored under key, or an error wrapping ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Close releases the resources held by the store.
	Close() error
}

var validKey = regexp.MustCompile(`^[a-z0-9_-]+$`)

// checkKey rejects keys that could not be used as a file name.
func checkKey(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("invalid key %q: want lower case letters, digits, '-' or '_'", key)
	}
	return nil
}
