package cache

import (
	"context"

	"github.com/rs/zerolog"
)

// instrumentedCache counts lookups and stores per group ("metadata" for the
// video description cache) and publishes the entry count at scrape time.
type instrumentedCache struct {
	inner  Cache
	group  string
	logger zerolog.Logger
}

func newInstrumentedCache(inner Cache, group string, logger zerolog.Logger) *instrumentedCache {
	registerEntriesCollector(group, inner.Len)
	return &instrumentedCache{inner: inner, group: group, logger: logger}
}

func (c *instrumentedCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, ok := c.inner.Get(ctx, key)
	if ok {
		HitsTotal.WithLabelValues(c.group).Inc()
	} else {
		MissesTotal.WithLabelValues(c.group).Inc()
	}
	c.logger.Trace().Str("cache", c.group).Str("key", key).Bool("hit", ok).Msg("Cache lookup")
	return val, ok
}

func (c *instrumentedCache) Set(ctx context.Context, key string, value []byte) {
	StoresTotal.WithLabelValues(c.group).Inc()
	c.inner.Set(ctx, key, value)
}

func (c *instrumentedCache) Contains(ctx context.Context, key string) bool {
	return c.inner.Contains(ctx, key)
}

func (c *instrumentedCache) Len() int {
	return c.inner.Len()
}

// Close drops the group's entries gauge before closing the backend.
func (c *instrumentedCache) Close() error {
	unregisterEntriesCollector(c.group)
	return c.inner.Close()
}
