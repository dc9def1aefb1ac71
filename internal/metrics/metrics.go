// metrics — счётчики Prometheus для ленты и событий вовлечённости.
// Отдаются на /metrics через promhttp в cmd/reels-service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedRequests — количество запросов страниц ленты по режимам.
	FeedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reels",
		Name:      "feed_requests_total",
		Help:      "Feed page requests by mode.",
	}, []string{"mode"})

	// FeedCacheHits — попадания в кэш трендовой ленты.
	FeedCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "reels",
		Name:      "feed_cache_hits_total",
		Help:      "Trending feed page cache hits.",
	})

	// EngagementEvents — записанные события вовлечённости по видам.
	EngagementEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reels",
		Name:      "engagement_events_total",
		Help:      "Appended engagement events by kind.",
	}, []string{"kind"})
)
