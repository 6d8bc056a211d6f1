package tournament

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/neural-dilemma/internal/game"
	"github.com/mauv0809/neural-dilemma/internal/metrics"
)

// Orchestrator runs matches and tournaments. It holds no tournament state of
// its own; callers must not run the same tournament twice concurrently.
type Orchestrator struct {
	runner   *game.Runner
	resolver Resolver
	metrics  metrics.Metrics
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(runner *game.Runner, resolver Resolver, metrics metrics.Metrics) *Orchestrator {
	return &Orchestrator{
		runner:   runner,
		resolver: resolver,
		metrics:  metrics,
	}
}

// PlayMatch plays a pending match to completion and returns the completed copy.
func (o *Orchestrator) PlayMatch(ctx context.Context, match Match, obs Observer) (Match, error) {
	if match.Status != StatusPending {
		return match, fmt.Errorf("%w: %s is %s", ErrMatchNotPending, match.ID, match.Status)
	}

	current := match.Clone()
	current.Status = StatusInProgress
	log.Info("Match started", "matchID", current.ID, "player1", current.Player1.ID, "player2", current.Player2.ID)
	if obs.OnMatchStart != nil {
		obs.OnMatchStart(current.Clone())
	}

	result, err := o.runner.Run(ctx,
		o.resolver.Resolve(current.Player1.ID),
		o.resolver.Resolve(current.Player2.ID),
		func(round game.RoundResult) {
			current.Rounds = append(current.Rounds, round)
			current.CurrentRound = round.Round
			current.Player1TotalScore += round.Player1Score
			current.Player2TotalScore += round.Player2Score
			if obs.OnRoundComplete != nil {
				obs.OnRoundComplete(current.Clone(), round)
			}
		},
	)
	if err != nil {
		return match, fmt.Errorf("match %s abandoned: %w", match.ID, err)
	}

	completed := current
	completed.Rounds = result.Rounds
	completed.Status = StatusCompleted
	completed.CurrentRound = game.RoundsPerMatch
	completed.Player1TotalScore = result.Player1TotalScore
	completed.Player2TotalScore = result.Player2TotalScore
	completed.Outcome = result.Winner
	switch result.Winner {
	case game.WinnerPlayer1:
		w := completed.Player1
		completed.Winner = &w
	case game.WinnerPlayer2:
		w := completed.Player2
		completed.Winner = &w
	}

	log.Info("Match completed", "matchID", completed.ID, "outcome", completed.Outcome,
		"player1Score", completed.Player1TotalScore, "player2Score", completed.Player2TotalScore)
	if obs.OnMatchComplete != nil {
		obs.OnMatchComplete(completed.Clone())
	}
	return completed, nil
}

// Run plays every match of a pending tournament, one after another in
// pairing order, then computes standings and qualifiers. t itself is never
// modified; the completed tournament is returned. Progress is only visible
// through obs.
func (o *Orchestrator) Run(ctx context.Context, t DailyTournament, obs Observer) (DailyTournament, error) {
	switch t.Status {
	case StatusCompleted:
		return t, fmt.Errorf("%w: %s", ErrTournamentCompleted, t.ID)
	case StatusInProgress:
		return t, fmt.Errorf("%w: %s", ErrTournamentInProgress, t.ID)
	}

	startTime := time.Now()
	run := t.Clone()
	run.Status = StatusInProgress
	log.Info("Tournament started", "tournamentID", run.ID, "participants", len(run.Participants), "matches", len(run.Matches))

	results := make([]Result, 0, len(run.Matches))
	for i, match := range run.Matches {
		completed, err := o.PlayMatch(ctx, match, obs)
		if err != nil {
			return t, fmt.Errorf("tournament %s: %w", t.ID, err)
		}
		run.Matches[i] = completed
		results = append(results, completed.Result())
	}

	run.Standings = Standings(results)
	run.Qualifiers = qualifiers(run.Standings, run.Participants, qualifierCount)
	run.Status = StatusCompleted

	duration := time.Since(startTime)
	o.metrics.IncTournamentsCompleted()
	o.metrics.ObserveTournamentDuration(duration.Seconds())
	log.Info("Tournament completed", "tournamentID", run.ID, "qualifiers", len(run.Qualifiers), "duration_ms", duration.Milliseconds())
	return run, nil
}
