package kvstore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"medibook/internal/infrastructure/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "users", `[]`))
	value, found, err := store.Get(ctx, "users")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, value)

	require.NoError(t, store.Set(ctx, "users", `[{"id":"u1"}]`))
	value, _, _ = store.Get(ctx, "users")
	assert.Equal(t, `[{"id":"u1"}]`, value)

	require.NoError(t, store.Delete(ctx, "users"))
	_, found, _ = store.Get(ctx, "users")
	assert.False(t, found)

	// Deleting a missing key is a no-op.
	assert.NoError(t, store.Delete(ctx, "users"))
}

func TestMemoryStoreKeys(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	require.NoError(t, store.Set(ctx, "patientHistory_AAD-1001", `[]`))
	require.NoError(t, store.Set(ctx, "patientHistory_AAD-1002", `[]`))
	require.NoError(t, store.Set(ctx, "users", `[]`))

	keys, err := store.Keys(ctx, "patientHistory_")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"patientHistory_AAD-1001", "patientHistory_AAD-1002"}, keys)

	keys, err = store.Keys(ctx, "nomatch_")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key_%d", n)
			_ = store.Set(ctx, key, "v")
			_, _, _ = store.Get(ctx, key)
			_, _ = store.Keys(ctx, "key_")
		}(i)
	}
	wg.Wait()

	keys, err := store.Keys(ctx, "key_")
	require.NoError(t, err)
	assert.Len(t, keys, 16)
}
