package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rce-newyear/greetings-api/internal/models"
	"github.com/rce-newyear/greetings-api/pkg/metrics"
)

const cacheName = "greetings"

// GreetingCache keeps recently shared greetings in memory so repeated
// share-link opens skip the database.
type GreetingCache struct {
	store *gocache.Cache
}

func NewGreetingCache(ttl time.Duration) *GreetingCache {
	return &GreetingCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

func (c *GreetingCache) Get(slug string) (*models.GreetingRecord, bool) {
	v, found := c.store.Get(slug)
	if !found {
		metrics.CacheMisses.WithLabelValues(cacheName).Inc()
		return nil, false
	}
	record, ok := v.(*models.GreetingRecord)
	if !ok {
		metrics.CacheMisses.WithLabelValues(cacheName).Inc()
		return nil, false
	}
	metrics.CacheHits.WithLabelValues(cacheName).Inc()
	return record, true
}

func (c *GreetingCache) Set(slug string, record *models.GreetingRecord) {
	c.store.Set(slug, record, gocache.DefaultExpiration)
}

func (c *GreetingCache) Delete(slug string) {
	c.store.Delete(slug)
}
