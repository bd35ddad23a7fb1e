package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		SourceLoads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ace_source_loads_total",
			Help: "The total number of times the match export was fetched and parsed.",
		}),
		SourceLoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ace_source_load_failures_total",
			Help: "The total number of match export loads that failed.",
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ace_cache_lookups_total",
			Help: "Cache lookups by cache and result (hit or miss).",
		}, []string{"cache", "result"}),
		CacheInvalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ace_cache_invalidations_total",
			Help: "The total number of full cache invalidations.",
		}),
		AggregationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ace_aggregation_duration_seconds",
			Help:    "The duration of a full player aggregation pass.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		PlayersTracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ace_players_tracked",
			Help: "The number of players in the current aggregated set.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ace_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ace_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ace_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.SourceLoads,
		s.SourceLoadFailures,
		s.CacheLookups,
		s.CacheInvalidations,
		s.AggregationDuration,
		s.PlayersTracked,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncSourceLoads() {
	s.SourceLoads.Inc()
}

func (s *Service) IncSourceLoadFailures() {
	s.SourceLoadFailures.Inc()
}

func (s *Service) IncCacheLookup(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	s.CacheLookups.WithLabelValues(cache, result).Inc()
}

func (s *Service) IncCacheInvalidations() {
	s.CacheInvalidations.Inc()
}

func (s *Service) ObserveAggregationDuration(duration float64) {
	s.AggregationDuration.Observe(duration)
}

func (s *Service) SetPlayersTracked(count int) {
	s.PlayersTracked.Set(float64(count))
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
