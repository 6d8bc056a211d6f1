package game

import "context"

// RoundsPerMatch is the fixed length of every match, whichever path runs it.
const RoundsPerMatch = 7

// RoundResult is one recorded round of a match. Rounds are numbered from 1.
type RoundResult struct {
	Round        int  `json:"round"`
	Player1Move  Move `json:"player1Move"`
	Player2Move  Move `json:"player2Move"`
	Player1Score int  `json:"player1Score"`
	Player2Score int  `json:"player2Score"`
}

// Turn is one past round seen from a single agent's perspective.
type Turn struct {
	Self     Move `json:"self"`
	Opponent Move `json:"op"`
}

// AgentInput is everything a strategy may observe before choosing a move.
type AgentInput struct {
	// OpponentLastMove is nil in round 1.
	OpponentLastMove *Move  `json:"opponent_last_move"`
	Round            int    `json:"round"`
	History          []Turn `json:"history"`
}

// AgentOutput is a strategy's decision for one round.
type AgentOutput struct {
	Move   Move   `json:"move"`
	Reason string `json:"reason,omitempty"`
}

// Strategy produces a move for one round. Implementations must not share
// state with other strategies and must honour ctx.
type Strategy interface {
	Decide(ctx context.Context, input AgentInput) (AgentOutput, error)
}

// StrategyFunc adapts a plain function to the Strategy interface.
type StrategyFunc func(ctx context.Context, input AgentInput) (AgentOutput, error)

func (f StrategyFunc) Decide(ctx context.Context, input AgentInput) (AgentOutput, error) {
	return f(ctx, input)
}

// Winner is the outcome of a match from the engine's point of view. How a
// consumer encodes it (indices, sentinels) is up to the consumer.
type Winner string

const (
	WinnerPlayer1 Winner = "player1"
	WinnerPlayer2 Winner = "player2"
	WinnerDraw    Winner = "draw"
)

// MatchResult is the outcome of a completed run of RoundsPerMatch rounds.
type MatchResult struct {
	Rounds            []RoundResult `json:"rounds"`
	Player1TotalScore int           `json:"player1TotalScore"`
	Player2TotalScore int           `json:"player2TotalScore"`
	Winner            Winner        `json:"winner"`
}
