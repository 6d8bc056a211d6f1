package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	roundsPlayed         int
	matchesPlayed        int
	matchDurations       []float64
	strategyFallbacks    int
	tournamentsCompleted int
	tournamentDurations  []float64
	eventsPublished      int
	eventsFailed         int
	slackNotifSent       int
	slackNotifFailed     int
	startupTime          float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncRoundsPlayed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roundsPlayed++
}

func (m *Mock) IncMatchesPlayed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesPlayed++
}

func (m *Mock) ObserveMatchDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchDurations = append(m.matchDurations, seconds)
}

func (m *Mock) IncStrategyFallbacks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.strategyFallbacks++
}

func (m *Mock) IncTournamentsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tournamentsCompleted++
}

func (m *Mock) ObserveTournamentDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tournamentDurations = append(m.tournamentDurations, seconds)
}

func (m *Mock) IncEventsPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsPublished++
}

func (m *Mock) IncEventsFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsFailed++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = seconds
}

// RoundsPlayed returns the number of times IncRoundsPlayed was called.
func (m *Mock) RoundsPlayed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.roundsPlayed
}

// MatchesPlayed returns the number of times IncMatchesPlayed was called.
func (m *Mock) MatchesPlayed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesPlayed
}

// StrategyFallbacks returns the number of times IncStrategyFallbacks was called.
func (m *Mock) StrategyFallbacks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.strategyFallbacks
}

// TournamentsCompleted returns the number of times IncTournamentsCompleted was called.
func (m *Mock) TournamentsCompleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tournamentsCompleted
}

// EventsPublished returns the number of times IncEventsPublished was called.
func (m *Mock) EventsPublished() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventsPublished
}

// EventsFailed returns the number of times IncEventsFailed was called.
func (m *Mock) EventsFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventsFailed
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
