package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ContentOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "content_operations_total", Help: "Number of content CRUD operations by collection, operation and outcome."},
		[]string{"collection", "operation", "status"},
	)
	AssetCleanupFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "asset_cleanup_failures_total", Help: "Number of best-effort asset deletions that failed."},
		[]string{"collection"},
	)
	SnapshotCacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "snapshot_cache_total", Help: "Portfolio snapshot cache lookups by result."},
		[]string{"result"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ContentOperations)
	reg.MustRegister(AssetCleanupFailures)
	reg.MustRegister(SnapshotCacheHits)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
