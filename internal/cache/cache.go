// Package cache holds remote classifier verdicts keyed by canonical URL.
package cache

import (
	"github.com/dgraph-io/ristretto"
)

// entryCost approximates the bookkeeping per entry on top of the key bytes.
const entryCost = 16

type VerdictCache struct {
	cache *ristretto.Cache
}

func New(maxSizePow2 int) (*VerdictCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/64) // ~64 bytes per link estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters * 10,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &VerdictCache{cache: cache}, nil
}

func (c *VerdictCache) Get(link string) (isFraud, found bool) {
	val, found := c.cache.Get(link)
	if !found {
		return false, false
	}
	v, ok := val.(bool)
	return v, ok
}

func (c *VerdictCache) Set(link string, isFraud bool) {
	c.cache.Set(link, isFraud, int64(len(link))+entryCost)
}

func (c *VerdictCache) Close() {
	c.cache.Close()
}

func (c *VerdictCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	return metrics.Hits(), metrics.Misses(), metrics.Ratio()
}
