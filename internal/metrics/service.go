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
		MatchesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_matches_completed_total",
			Help: "The total number of matches resolved and persisted.",
		}),
		StatsQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_stats_queries_total",
			Help: "The total number of career stats aggregation queries.",
		}),
		AggregationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cricket_stats_aggregation_duration_seconds",
			Help:    "The duration of individual stats aggregation queries.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		ProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cricket_match_processing_duration_seconds",
			Help:    "The duration of individual match completion processing.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_notifications_sent_total",
			Help: "The total number of notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cricket_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cricket_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.MatchesCompleted,
		s.StatsQueries,
		s.AggregationDuration,
		s.ProcessingDuration,
		s.NotifSent,
		s.NotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncMatchesCompleted() {
	s.MatchesCompleted.Inc()
}

func (s *Service) IncStatsQueries() {
	s.StatsQueries.Inc()
}

func (s *Service) ObserveAggregationDuration(duration float64) {
	s.AggregationDuration.Observe(duration)
}

func (s *Service) ObserveProcessingDuration(duration float64) {
	s.ProcessingDuration.Observe(duration)
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
