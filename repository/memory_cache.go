package repository

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryCache is an in-process LRU holding at most maxEntries predictions.
// Entries older than ttl are treated as misses; a ttl of zero keeps them
// until evicted.
type MemoryCache struct {
	entries *expirable.LRU[string, string]
}

func NewMemoryCache(maxEntries int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: expirable.NewLRU[string, string](maxEntries, nil, ttl),
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	val, ok := m.entries.Get(key)
	return val, ok, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.entries.Add(key, value)
	return nil
}

func (m *MemoryCache) Len() int {
	return m.entries.Len()
}
