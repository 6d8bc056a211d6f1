package game

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/neural-dilemma/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// DefaultStrategyTimeout bounds a single strategy invocation.
const DefaultStrategyTimeout = 2 * time.Second

// Runner plays matches between two strategies.
type Runner struct {
	timeout time.Duration
	metrics metrics.Metrics
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithStrategyTimeout overrides DefaultStrategyTimeout. Non-positive values are ignored.
func WithStrategyTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// NewRunner creates a new Runner.
func NewRunner(metrics metrics.Metrics, opts ...RunnerOption) *Runner {
	r := &Runner{
		timeout: DefaultStrategyTimeout,
		metrics: metrics,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run plays RoundsPerMatch rounds between player1 and player2. Both
// strategies are asked for their move concurrently; a strategy that fails,
// panics, times out or returns a malformed output plays DEFECT for that round.
// onRound, if set, is called after each round is recorded.
//
// The only error returned is ctx's, when the caller abandons the match. No
// partial result is returned in that case.
func (r *Runner) Run(ctx context.Context, player1, player2 Strategy, onRound func(RoundResult)) (MatchResult, error) {
	startTime := time.Now()
	rounds := make([]RoundResult, 0, RoundsPerMatch)
	var total1, total2 int

	for round := 1; round <= RoundsPerMatch; round++ {
		if err := ctx.Err(); err != nil {
			return MatchResult{}, err
		}
		input1 := BuildAgentInput(rounds, round, true)
		input2 := BuildAgentInput(rounds, round, false)

		var out1, out2 AgentOutput
		var g errgroup.Group
		g.Go(func() error {
			out1 = r.decide(ctx, "player1", player1, input1)
			return nil
		})
		g.Go(func() error {
			out2 = r.decide(ctx, "player2", player2, input2)
			return nil
		})
		_ = g.Wait()

		// A round interrupted by cancellation is never recorded.
		if err := ctx.Err(); err != nil {
			return MatchResult{}, err
		}

		score1, score2 := Score(out1.Move, out2.Move)
		result := RoundResult{
			Round:        round,
			Player1Move:  out1.Move,
			Player2Move:  out2.Move,
			Player1Score: score1,
			Player2Score: score2,
		}
		rounds = append(rounds, result)
		total1 += score1
		total2 += score2
		r.metrics.IncRoundsPlayed()
		log.Debug("Round complete", "round", round, "player1", out1.Move, "player2", out2.Move, "reason1", out1.Reason, "reason2", out2.Reason)

		if onRound != nil {
			onRound(result)
		}
	}

	winner := WinnerDraw
	switch {
	case total1 > total2:
		winner = WinnerPlayer1
	case total2 > total1:
		winner = WinnerPlayer2
	}

	r.metrics.IncMatchesPlayed()
	r.metrics.ObserveMatchDuration(time.Since(startTime).Seconds())

	return MatchResult{
		Rounds:            rounds,
		Player1TotalScore: total1,
		Player2TotalScore: total2,
		Winner:            winner,
	}, nil
}

type decision struct {
	output AgentOutput
	err    error
}

// decide invokes one strategy and maps every failure to DEFECT.
func (r *Runner) decide(ctx context.Context, side string, strategy Strategy, input AgentInput) AgentOutput {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan decision, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- decision{err: fmt.Errorf("strategy panicked: %v", p)}
			}
		}()
		out, err := strategy.Decide(ctx, input)
		done <- decision{output: out, err: err}
	}()

	var err error
	select {
	case d := <-done:
		if d.err == nil {
			return d.output
		}
		err = d.err
	case <-ctx.Done():
		err = fmt.Errorf("strategy did not answer in time: %w", ctx.Err())
	}

	r.metrics.IncStrategyFallbacks()
	log.Warn("Strategy failed, defaulting to DEFECT", "side", side, "round", input.Round, "error", err)
	return AgentOutput{Move: Defect, Reason: "Strategy failed, defaulting to DEFECT"}
}
