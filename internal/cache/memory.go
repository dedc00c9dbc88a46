package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

func init() {
	Register("memory", newMemoryCache)
}

// memoryCache keeps encoded video descriptions in process, bounded both by
// entry count and by age so a long running server sees track changes eventually.
type memoryCache struct {
	entries *lru.LRU[string, []byte]
}

func newMemoryCache(cfg ProviderConfig) (Cache, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("cache: memory size must be positive, got %d", cfg.Size)
	}

	var onEvict lru.EvictCallback[string, []byte]
	if cfg.OnEvict != nil {
		onEvict = func(key string, value []byte) {
			cfg.OnEvict(key, value)
		}
	}
	return &memoryCache{entries: lru.NewLRU(cfg.Size, onEvict, cfg.TTL)}, nil
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	return m.entries.Get(key)
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte) {
	m.entries.Add(key, value)
}

// Contains does not count as a use, so it never delays eviction of an entry.
func (m *memoryCache) Contains(_ context.Context, key string) bool {
	return m.entries.Contains(key)
}

func (m *memoryCache) Len() int {
	return m.entries.Len()
}

func (m *memoryCache) Close() error {
	return nil
}
