package agent

import (
	"context"
	"math/rand"
	"sync"

	"github.com/mauv0809/neural-dilemma/internal/game"
)

// endgameRound is the round after which the analytical strategies start
// exploiting trust. Matches shorter than this never reach it.
const endgameRound = 40

func lastTurns(history []game.Turn, n int) []game.Turn {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

func countOpponent(turns []game.Turn, m game.Move) int {
	n := 0
	for _, t := range turns {
		if t.Opponent == m {
			n++
		}
	}
	return n
}

func opponentDefected(in game.AgentInput) bool {
	return in.OpponentLastMove != nil && *in.OpponentLastMove == game.Defect
}

func cooperate(reason string) (game.AgentOutput, error) {
	return game.AgentOutput{Move: game.Cooperate, Reason: reason}, nil
}

func defect(reason string) (game.AgentOutput, error) {
	return game.AgentOutput{Move: game.Defect, Reason: reason}, nil
}

// AlwaysCooperate cooperates every round.
type AlwaysCooperate struct{}

func (AlwaysCooperate) Decide(ctx context.Context, in game.AgentInput) (game.AgentOutput, error) {
	return cooperate("Unconditional cooperation")
}

// AlwaysDefect defects every round.
type AlwaysDefect struct{}

func (AlwaysDefect) Decide(ctx context.Context, in game.AgentInput) (game.AgentOutput, error) {
	return defect("Unconditional defection")
}

// AdaptiveTitForTat opens with cooperation and only retaliates once the
// opponent has defected in at least two of the last three rounds.
type AdaptiveTitForTat struct{}

func (AdaptiveTitForTat) Decide(ctx context.Context, in game.AgentInput) (game.AgentOutput, error) {
	if in.Round == 1 {
		return cooperate("Start with cooperation to establish trust")
	}
	if opponentDefected(in) && countOpponent(lastTurns(in.History, 3), game.Defect) >= 2 {
		return defect("Opponent is defecting consistently, retaliate")
	}
	return cooperate("Continue cooperation")
}

// ForgivingCooperator keeps cooperating unless the opponent has defected more
// than twice as often as it cooperated.
type ForgivingCooperator struct{}

func (ForgivingCooperator) Decide(ctx context.Context, in game.AgentInput) (game.AgentOutput, error) {
	if in.Round == 1 {
		return cooperate("Always start with good faith cooperation")
	}
	defections := countOpponent(in.History, game.Defect)
	cooperations := countOpponent(in.History, game.Cooperate)
	if defections > cooperations*2 {
		return defect("Opponent is too aggressive, must protect score")
	}
	return cooperate("Forgive and cooperate")
}

// PatternAnalyzer looks at the opponent's last four moves and defects when
// defection dominates, and in the end game.
type PatternAnalyzer struct{}

func (PatternAnalyzer) Decide(ctx context.Context, in game.AgentInput) (game.AgentOutput, error) {
	if in.Round <= 2 {
		return cooperate("Efficient: Quick trust establishment")
	}
	recent := lastTurns(in.History, 4)
	if countOpponent(recent, game.Defect) > countOpponent(recent, game.Cooperate) {
		return defect("Efficient: Pattern detected, switch strategy")
	}
	if in.Round > endgameRound {
		return defect("Efficient: End-game optimization")
	}
	return cooperate("Efficient: Maintain cooperation")
}

// GameTheoryOptimal plays tit-for-tat, punishes an opening defection and
// exploits sustained mutual cooperation in the end game.
type GameTheoryOptimal struct{}

func (GameTheoryOptimal) Decide(ctx context.Context, in game.AgentInput) (game.AgentOutput, error) {
	if in.Round == 1 {
		return cooperate("GTO: Cooperate to signal willingness")
	}
	if in.Round == 2 && opponentDefected(in) {
		return defect("GTO: Punish first-round defection")
	}
	mutual := true
	for _, t := range lastTurns(in.History, 3) {
		if t.Self != game.Cooperate || t.Opponent != game.Cooperate {
			mutual = false
			break
		}
	}
	if mutual && in.Round > endgameRound {
		return defect("GTO: Exploit end-game trust")
	}
	if opponentDefected(in) {
		return defect("GTO: Tit-for-tat with analysis")
	}
	return cooperate("GTO: Tit-for-tat with analysis")
}

// lockedRand serialises access to a *rand.Rand, which is not safe for
// concurrent use. The same strategy may play both sides of a match.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

// AggressiveDefector opens with a defection, exploits cooperative opponents,
// matches aggression and otherwise defects 60% of the time.
type AggressiveDefector struct {
	rng lockedRand
}

// NewAggressiveDefector creates an AggressiveDefector drawing from rng.
func NewAggressiveDefector(rng *rand.Rand) *AggressiveDefector {
	return &AggressiveDefector{rng: lockedRand{rng: rng}}
}

func (s *AggressiveDefector) Decide(ctx context.Context, in game.AgentInput) (game.AgentOutput, error) {
	if in.Round == 1 {
		return defect("Aggressive: Test opponent resolve")
	}
	if float64(countOpponent(in.History, game.Cooperate)) > float64(len(in.History))*0.8 {
		return defect("Exploit cooperative opponent")
	}
	if opponentDefected(in) {
		return defect("Match aggression")
	}
	if s.rng.Float64() < 0.6 {
		return defect("Aggressive with occasional cooperation")
	}
	return cooperate("Aggressive with occasional cooperation")
}

// RandomCooperator cooperates with probability 0.7 regardless of history.
type RandomCooperator struct {
	rng lockedRand
}

// NewRandomCooperator creates a RandomCooperator drawing from rng.
func NewRandomCooperator(rng *rand.Rand) *RandomCooperator {
	return &RandomCooperator{rng: lockedRand{rng: rng}}
}

func (s *RandomCooperator) Decide(ctx context.Context, in game.AgentInput) (game.AgentOutput, error) {
	if s.rng.Float64() < 0.7 {
		return cooperate("Unpredictable, leaning towards cooperation")
	}
	return defect("Unpredictable, occasional defection")
}
