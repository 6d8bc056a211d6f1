package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncRoundsPlayed()
	IncMatchesPlayed()
	ObserveMatchDuration(seconds float64)
	IncStrategyFallbacks()
	IncTournamentsCompleted()
	ObserveTournamentDuration(seconds float64)
	IncEventsPublished()
	IncEventsFailed()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(seconds float64)
}
