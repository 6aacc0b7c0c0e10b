package gacha

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/RewardEngine_Go/internal/domain"
)

// candidateCache keeps the item pool for each (tier, season, region) filter.
// Entries are dropped wholesale when the catalog is reloaded or re-synced.
type candidateCache struct {
	lru *expirable.LRU[string, []domain.Item]
}

func newCandidateCache(size int, ttl time.Duration) *candidateCache {
	if size <= 0 {
		size = DefaultCandidateCacheSize
	}
	return &candidateCache{
		lru: expirable.NewLRU[string, []domain.Item](size, nil, ttl),
	}
}

func (c *candidateCache) Get(filter domain.ItemFilter) ([]domain.Item, bool) {
	return c.lru.Get(filter.Key())
}

func (c *candidateCache) Set(filter domain.ItemFilter, items []domain.Item) {
	c.lru.Add(filter.Key(), items)
}

// Clear removes all entries from the cache.
func (c *candidateCache) Clear() {
	c.lru.Purge()
}
