package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncSourceLoads()
	IncSourceLoadFailures()
	IncCacheLookup(cache string, hit bool)
	IncCacheInvalidations()
	ObserveAggregationDuration(duration float64)
	SetPlayersTracked(count int)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
