package notifier

import (
	"github.com/charmbracelet/log"
	"github.com/mauv0809/neural-dilemma/internal/tournament"
)

// Notifier defines a high-level interface for sending notifications about arena events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For completed daily tournaments
	SendTournamentResult(t tournament.DailyTournament, dryRun bool) error
	// For matches played on demand
	SendMatchResult(match tournament.Match, dryRun bool) error
	// For completed weekly finals
	SendWeeklyFinalResult(result tournament.WeeklyFinalResult, dryRun bool) error
}

// Noop is used when no notification provider is configured.
type Noop struct{}

var _ Notifier = Noop{}

func (Noop) SendTournamentResult(t tournament.DailyTournament, dryRun bool) error {
	log.Debug("Notifications disabled, skipping tournament result", "tournamentID", t.ID)
	return nil
}

func (Noop) SendMatchResult(match tournament.Match, dryRun bool) error {
	log.Debug("Notifications disabled, skipping match result", "matchID", match.ID)
	return nil
}

func (Noop) SendWeeklyFinalResult(result tournament.WeeklyFinalResult, dryRun bool) error {
	log.Debug("Notifications disabled, skipping weekly final result", "finalID", result.ID)
	return nil
}
