package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	assert.NoError(t, cache.Set(ctx, "k", "v", time.Minute))
	got, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)

	assert.NoError(t, cache.Set(ctx, "k", "v2", time.Minute))
	got, _ = cache.Get(ctx, "k")
	assert.Equal(t, "v2", got)
	assert.Equal(t, 1, cache.Len())
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()
	now := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	assert.NoError(t, cache.Set(ctx, "short", "v", time.Minute))
	assert.NoError(t, cache.Set(ctx, "forever", "v", 0))

	now = now.Add(2 * time.Minute)

	_, ok := cache.Get(ctx, "short")
	assert.False(t, ok)
	_, ok = cache.Get(ctx, "forever")
	assert.True(t, ok)
	assert.Equal(t, 1, cache.Len(), "expired keys are dropped on read")
}
