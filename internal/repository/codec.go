package repository

import (
	"context"
	"encoding/json"

	"medibook/internal/infrastructure/kvstore"

	"github.com/sirupsen/logrus"
)

const emptyList = "[]"

// loadList reads and decodes the JSON list stored under key. A missing
// key yields an empty slice. A corrupt value is treated as no data: the
// key is reset to an empty list, a warning is logged, and an empty slice
// is returned instead of the parse error.
func loadList[T any](ctx context.Context, store kvstore.Store, log *logrus.Logger, key string) ([]T, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found || raw == "" {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Warnf("Corrupt value under key %q, resetting to empty: %+v", key, err)
		if resetErr := store.Set(ctx, key, emptyList); resetErr != nil {
			return nil, resetErr
		}
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// saveList encodes items and writes them under key before returning, so
// a successful save means the data is durable in the store.
func saveList[T any](ctx context.Context, store kvstore.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, string(raw))
}
