package driven

import "context"

// KVStore is a small key-value store used for the last-search cache.
type KVStore interface {
	// Get returns the value stored under key.
	// The boolean is false if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}
