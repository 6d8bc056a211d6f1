package notifier

import (
	"sync"

	"github.com/mauv0809/neural-dilemma/internal/tournament"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendTournamentResultFunc  func(t tournament.DailyTournament, dryRun bool) error
	SendMatchResultFunc       func(match tournament.Match, dryRun bool) error
	SendWeeklyFinalResultFunc func(result tournament.WeeklyFinalResult, dryRun bool) error

	// Call records
	SendTournamentResultCalls []struct {
		Tournament tournament.DailyTournament
		DryRun     bool
	}
	SendMatchResultCalls []struct {
		Match  tournament.Match
		DryRun bool
	}
	SendWeeklyFinalResultCalls []struct {
		Result tournament.WeeklyFinalResult
		DryRun bool
	}
}

// NewMock creates a new mock notifier.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendTournamentResult(t tournament.DailyTournament, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendTournamentResultCalls = append(m.SendTournamentResultCalls, struct {
		Tournament tournament.DailyTournament
		DryRun     bool
	}{t, dryRun})
	if m.SendTournamentResultFunc != nil {
		return m.SendTournamentResultFunc(t, dryRun)
	}
	return nil
}

func (m *Mock) SendMatchResult(match tournament.Match, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchResultCalls = append(m.SendMatchResultCalls, struct {
		Match  tournament.Match
		DryRun bool
	}{match, dryRun})
	if m.SendMatchResultFunc != nil {
		return m.SendMatchResultFunc(match, dryRun)
	}
	return nil
}

func (m *Mock) SendWeeklyFinalResult(result tournament.WeeklyFinalResult, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendWeeklyFinalResultCalls = append(m.SendWeeklyFinalResultCalls, struct {
		Result tournament.WeeklyFinalResult
		DryRun bool
	}{result, dryRun})
	if m.SendWeeklyFinalResultFunc != nil {
		return m.SendWeeklyFinalResultFunc(result, dryRun)
	}
	return nil
}

// TournamentResultCount returns the number of SendTournamentResult calls.
func (m *Mock) TournamentResultCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SendTournamentResultCalls)
}

// MatchResultCount returns the number of SendMatchResult calls.
func (m *Mock) MatchResultCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SendMatchResultCalls)
}

// WeeklyFinalResultCount returns the number of SendWeeklyFinalResult calls.
func (m *Mock) WeeklyFinalResultCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SendWeeklyFinalResultCalls)
}
