package cache

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func getCounterVecValue(cv *prometheus.CounterVec, label string) float64 {
	c, err := cv.GetMetricWithLabelValues(label)
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func useIsolatedRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()
	reg := prometheus.NewRegistry()
	orig := entriesReg
	entriesReg = reg
	t.Cleanup(func() { entriesReg = orig })
	return reg
}

func TestInstrumentedCache_HitsAndMisses(t *testing.T) {
	ctx := context.Background()
	c, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour, Group: "test-hits"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	hits := getCounterVecValue(HitsTotal, "test-hits")
	misses := getCounterVecValue(MissesTotal, "test-hits")
	stores := getCounterVecValue(StoresTotal, "test-hits")

	c.Set(ctx, "k", []byte("v"))
	_, _ = c.Get(ctx, "k")
	_, _ = c.Get(ctx, "absent")

	if got := getCounterVecValue(HitsTotal, "test-hits") - hits; got != 1 {
		t.Errorf("Expected 1 hit, got %.0f", got)
	}
	if got := getCounterVecValue(MissesTotal, "test-hits") - misses; got != 1 {
		t.Errorf("Expected 1 miss, got %.0f", got)
	}
	if got := getCounterVecValue(StoresTotal, "test-hits") - stores; got != 1 {
		t.Errorf("Expected 1 store, got %.0f", got)
	}
}

func TestInstrumentedCache_Evictions(t *testing.T) {
	ctx := context.Background()
	var evicted []string
	c, err := New("memory", ProviderConfig{
		Size:    1,
		TTL:     time.Hour,
		Group:   "test-evict",
		OnEvict: func(key string, _ []byte) { evicted = append(evicted, key) },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	before := getCounterVecValue(EvictionsTotal, "test-evict")
	c.Set(ctx, "a", []byte("1"))
	c.Set(ctx, "b", []byte("2"))

	if got := getCounterVecValue(EvictionsTotal, "test-evict") - before; got != 1 {
		t.Errorf("Expected 1 eviction, got %.0f", got)
	}
	if len(evicted) != 1 || evicted[0] != "a" {
		t.Errorf("Expected caller OnEvict for 'a', got %v", evicted)
	}
}

func TestInstrumentedCache_EntriesGauge(t *testing.T) {
	ctx := context.Background()
	reg := useIsolatedRegistry(t)

	c, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour, Group: "test-entries"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	gather := func() float64 {
		mfs, _ := reg.Gather()
		for _, mf := range mfs {
			if mf.GetName() != "cache_entries" {
				continue
			}
			for _, m := range mf.GetMetric() {
				return m.GetGauge().GetValue()
			}
		}
		return -1
	}

	c.Set(ctx, "x", []byte("1"))
	c.Set(ctx, "y", []byte("2"))
	if v := gather(); v != 2 {
		t.Errorf("Expected 2 entries, got %.0f", v)
	}

	_ = c.Close()
	if v := gather(); v != -1 {
		t.Errorf("Expected gauge to be unregistered after Close, got %.0f", v)
	}
}
