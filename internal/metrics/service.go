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
		RoundsPlayed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dilemma_rounds_played_total",
			Help: "The total number of rounds recorded across all matches.",
		}),
		MatchesPlayed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dilemma_matches_played_total",
			Help: "The total number of matches played to completion.",
		}),
		MatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dilemma_match_duration_seconds",
			Help:    "The duration of individual matches.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		StrategyFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dilemma_strategy_fallbacks_total",
			Help: "The total number of strategy invocations replaced by a DEFECT.",
		}),
		TournamentsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dilemma_tournaments_completed_total",
			Help: "The total number of tournaments run to completion.",
		}),
		TournamentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dilemma_tournament_duration_seconds",
			Help:    "The duration of complete tournament runs.",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dilemma_events_published_total",
			Help: "The total number of outcome events published.",
		}),
		EventsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dilemma_events_failed_total",
			Help: "The total number of outcome events that failed to publish.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dilemma_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dilemma_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dilemma_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.RoundsPlayed,
		s.MatchesPlayed,
		s.MatchDuration,
		s.StrategyFallbacks,
		s.TournamentsCompleted,
		s.TournamentDuration,
		s.EventsPublished,
		s.EventsFailed,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRoundsPlayed() {
	s.RoundsPlayed.Inc()
}

func (s *Service) IncMatchesPlayed() {
	s.MatchesPlayed.Inc()
}

func (s *Service) ObserveMatchDuration(seconds float64) {
	s.MatchDuration.Observe(seconds)
}

func (s *Service) IncStrategyFallbacks() {
	s.StrategyFallbacks.Inc()
}

func (s *Service) IncTournamentsCompleted() {
	s.TournamentsCompleted.Inc()
}

func (s *Service) ObserveTournamentDuration(seconds float64) {
	s.TournamentDuration.Observe(seconds)
}

func (s *Service) IncEventsPublished() {
	s.EventsPublished.Inc()
}

func (s *Service) IncEventsFailed() {
	s.EventsFailed.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
