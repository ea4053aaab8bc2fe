package kvstore

import "context"

// Store is the key-value substrate every repository persists through.
// Values are JSON-encoded strings; decoding is the repository's concern.
type Store interface {
	// Get returns the value for key; found is false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set writes value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns every stored key starting with prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
