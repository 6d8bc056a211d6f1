package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	RoundsPlayed         prometheus.Counter
	MatchesPlayed        prometheus.Counter
	MatchDuration        prometheus.Histogram
	StrategyFallbacks    prometheus.Counter
	TournamentsCompleted prometheus.Counter
	TournamentDuration   prometheus.Histogram
	EventsPublished      prometheus.Counter
	EventsFailed         prometheus.Counter
	SlackNotifSent       prometheus.Counter
	SlackNotifFailed     prometheus.Counter
	StartupTimeSeconds   prometheus.Gauge
}
