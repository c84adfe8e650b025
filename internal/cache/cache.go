// Package cache keeps a short-lived copy of the public Zoo Arcadia content
// so anonymous page loads do not hammer the upstream backend.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/zoo-arcadia/arcadia-gateway/internal/api/metrics"
)

const defaultTTL = 60 * time.Second

// Well-known keys for the public collections.
const (
	KeyAnimals  = "animals"
	KeyHabitats = "habitats"
	KeyServices = "services"
	KeyReviews  = "reviews"
)

// Public is a TTL cache for upstream read results on public routes.
type Public struct {
	store *gocache.Cache
	ttl   time.Duration
}

func NewPublic(ttl time.Duration) *Public {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Public{
		store: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Get returns the cached value for key, if fresh.
func (p *Public) Get(key string) (any, bool) {
	v, ok := p.store.Get(key)
	if ok {
		metrics.CacheRequestsTotal.WithLabelValues(key, "hit").Inc()
	} else {
		metrics.CacheRequestsTotal.WithLabelValues(key, "miss").Inc()
	}
	return v, ok
}

// Set stores a value under key with the cache's TTL.
func (p *Public) Set(key string, v any) {
	p.store.Set(key, v, p.ttl)
}

// Invalidate drops a key, typically after a write through the gateway.
func (p *Public) Invalidate(key string) {
	p.store.Delete(key)
}
