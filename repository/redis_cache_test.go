package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	cache := NewRedisCache(addr)
	t.Cleanup(func() { _ = cache.Close() })
	require.NoError(t, cache.Ping(ctx))

	key := "test:" + uuid.NewString()
	_, ok := cache.Get(ctx, key)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, key, "cached", time.Minute))
	got, ok := cache.Get(ctx, key)
	assert.True(t, ok)
	assert.Equal(t, "cached", got)
}
