// Package store abstracts the named-blob namespace behind the server.
// Keys reaching a Store have already passed protocol validation.
package store

import "errors"

// ErrNotFound is the only expected failure of Get; anything else is a
// fault of the underlying medium.
var ErrNotFound = errors.New("key not found")

type Store interface {
	// Put creates or fully replaces the blob at key.
	Put(key string, value []byte) error
	// Get returns the blob's content, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Del removes the blob. Deleting an absent key succeeds.
	Del(key string) error
	Close() error
}
