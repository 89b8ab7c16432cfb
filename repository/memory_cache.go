package repository

import (
	"context"
	"sync"
	"time"
)

type cacheItem struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is a process-local CacheRepository, used when no Redis address
// is configured and in tests.
type MemoryCache struct {
	mu   sync.Mutex
	data map[string]cacheItem
	now  func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string]cacheItem),
		now:  time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.data[key]
	if !ok {
		return "", false
	}
	if !item.expiresAt.IsZero() && m.now().After(item.expiresAt) {
		delete(m.data, key)
		return "", false
	}
	return item.value, true
}

// Set stores value under key. A zero ttl keeps the value until it is
// overwritten.
func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := cacheItem{value: value}
	if ttl > 0 {
		item.expiresAt = m.now().Add(ttl)
	}
	m.data[key] = item
	return nil
}

// Len returns the number of stored keys, expired ones included.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

var _ CacheRepository = (*MemoryCache)(nil)
