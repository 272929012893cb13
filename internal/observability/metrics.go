package observability

import "github.com/prometheus/client_golang/prometheus"

// FeedFallbacks counts feed requests served by the popularity fallback rather
// than the personalized membership query.
var FeedFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "lumeo_feed_fallbacks_total",
	Help: "Feed pages served from the popularity fallback branch.",
})

// CounterDrift counts counter adjustments that touched fewer rows than
// expected. Non-zero values indicate follow/like rows referencing missing
// accounts or posts.
var CounterDrift = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "lumeo_counter_drift_total",
	Help: "Denormalized counter updates that affected fewer rows than expected.",
})
