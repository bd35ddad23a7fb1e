package metrics

import "github.com/prometheus/client_golang/prometheus"

// Cache names used as the "cache" label on lookups.
const (
	CacheRaw     = "raw"
	CachePlayers = "players"
	CacheMatches = "matches"
)

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	SourceLoads         prometheus.Counter
	SourceLoadFailures  prometheus.Counter
	CacheLookups        *prometheus.CounterVec
	CacheInvalidations  prometheus.Counter
	AggregationDuration prometheus.Histogram
	PlayersTracked      prometheus.Gauge
	SlackNotifSent      prometheus.Counter
	SlackNotifFailed    prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}
