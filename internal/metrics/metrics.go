// Package metrics holds the process-wide prometheus counters for the like
// count cache. Global counters only, no per-album labels, so cardinality
// stays bounded.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LikeCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "soundnest_like_cache_hits_total",
		Help: "Like count reads served straight from the cache",
	})
	LikeCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "soundnest_like_cache_misses_total",
		Help: "Like count reads that recomputed from the store",
	})
	LikeCacheInvalidations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "soundnest_like_cache_invalidations_total",
		Help: "Cache entries deleted after a like or unlike",
	})
	LikeCacheErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "soundnest_like_cache_errors_total",
		Help: "Cache transport failures, miss excluded",
	})
)

// Handler exposes the default registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
