package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	store.Set(ctx, "a", []byte("one"), time.Minute)
	got, ok := store.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, []byte("one"), got)

	store.Delete(ctx, "a")
	_, ok = store.Get(ctx, "a")
	assert.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(10 * time.Millisecond)
	defer store.Close()

	store.Set(ctx, "short", []byte("x"), 20*time.Millisecond)
	store.Set(ctx, "forever", []byte("y"), 0)

	assert.Eventually(t, func() bool {
		_, ok := store.Get(ctx, "short")
		return !ok
	}, time.Second, 5*time.Millisecond)

	// janitor removes the expired entry
	assert.Eventually(t, func() bool { return store.Len() == 1 }, time.Second, 5*time.Millisecond)

	_, ok := store.Get(ctx, "forever")
	assert.True(t, ok)
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
