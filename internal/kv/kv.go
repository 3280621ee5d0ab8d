// Package kv implements the persistence adapter: a key-value store
// holding the serialized book and customer collections. The domain
// core never touches it directly; the state container loads the
// collections at startup and saves them after each mutation. Backends
// exist for embedded SQLite, MySQL, Redis and plain memory, all
// behind the same interface, so the core stays independent of the
// storage medium.
package kv

import "context"

// Store is the persistence adapter contract.
type Store interface {
	// Get returns the value stored under key. A missing key yields
	// ok == false with a nil error.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Close releases the underlying resources.
	Close() error
}
