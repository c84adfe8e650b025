package cache

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/zoo-arcadia/arcadia-gateway/internal/api/metrics"
)

// Source fetches one public collection from upstream.
type Source struct {
	Key   string
	Fetch func(ctx context.Context) (any, error)
}

// Refresher keeps public collections warm by refetching each one on its own
// goroutine at a fixed interval. A failed refresh keeps the previous entry
// until its TTL runs out, so brief upstream outages do not blank the site.
type Refresher struct {
	cache    *Public
	sources  []Source
	interval time.Duration
	log      zerolog.Logger
}

func NewRefresher(cache *Public, sources []Source, interval time.Duration, log zerolog.Logger) *Refresher {
	if interval <= 0 {
		interval = cache.ttl
	}
	return &Refresher{cache: cache, sources: sources, interval: interval, log: log}
}

// Start launches one worker per source. Workers stop when ctx is cancelled.
func (r *Refresher) Start(ctx context.Context) {
	for _, src := range r.sources {
		go r.run(ctx, src)
	}
}

func (r *Refresher) run(ctx context.Context, src Source) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.refresh(ctx, src)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx, src)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context, src Source) {
	v, err := src.Fetch(ctx)
	if err != nil {
		metrics.CacheRefreshTotal.WithLabelValues(src.Key, "error").Inc()
		r.log.Warn().Err(err).Str("resource", src.Key).Msg("cache refresh failed")
		return
	}
	r.cache.Set(src.Key, v)
	metrics.CacheRefreshTotal.WithLabelValues(src.Key, "ok").Inc()
}
