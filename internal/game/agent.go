package game

import (
	"encoding/json"
	"errors"
)

// ErrMalformedOutput is returned by ParseAgentOutput when the payload does not
// carry a valid move.
var ErrMalformedOutput = errors.New("malformed agent output")

// BuildAgentInput builds the input for one side from the rounds recorded so
// far. Player 2 sees the history with the roles swapped.
func BuildAgentInput(history []RoundResult, round int, isPlayer1 bool) AgentInput {
	turns := make([]Turn, len(history))
	for i, r := range history {
		if isPlayer1 {
			turns[i] = Turn{Self: r.Player1Move, Opponent: r.Player2Move}
		} else {
			turns[i] = Turn{Self: r.Player2Move, Opponent: r.Player1Move}
		}
	}

	input := AgentInput{Round: round, History: turns}
	if len(turns) > 0 {
		last := turns[len(turns)-1].Opponent
		input.OpponentLastMove = &last
	}
	return input
}

// WireInput is the agent protocol form of AgentInput, using "C"/"D" moves.
type WireInput struct {
	OpponentLastMove *string    `json:"opponent_last_move"`
	Round            int        `json:"round"`
	History          []WireTurn `json:"history"`
}

type WireTurn struct {
	Self string `json:"self"`
	Op   string `json:"op"`
}

// Wire converts the input to its protocol form.
func (in AgentInput) Wire() WireInput {
	out := WireInput{Round: in.Round, History: make([]WireTurn, len(in.History))}
	for i, t := range in.History {
		out.History[i] = WireTurn{Self: t.Self.Short(), Op: t.Opponent.Short()}
	}
	if in.OpponentLastMove != nil {
		s := in.OpponentLastMove.Short()
		out.OpponentLastMove = &s
	}
	return out
}

// ParseAgentOutput decodes an agent protocol reply. Anything other than a
// "C" or "D" move yields a DEFECT output together with ErrMalformedOutput.
func ParseAgentOutput(data []byte) (AgentOutput, error) {
	fallback := AgentOutput{Move: Defect, Reason: "Invalid output, defaulting to DEFECT"}

	var raw struct {
		Move   any `json:"move"`
		Reason any `json:"reason"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fallback, errors.Join(ErrMalformedOutput, err)
	}
	s, ok := raw.Move.(string)
	if !ok {
		return fallback, ErrMalformedOutput
	}
	move, err := ParseShortMove(s)
	if err != nil {
		return fallback, errors.Join(ErrMalformedOutput, err)
	}

	out := AgentOutput{Move: move}
	if reason, ok := raw.Reason.(string); ok {
		out.Reason = reason
	}
	return out, nil
}
