package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAgentInput(t *testing.T) {
	history := []RoundResult{
		{Round: 1, Player1Move: Cooperate, Player2Move: Defect, Player1Score: 0, Player2Score: 5},
		{Round: 2, Player1Move: Defect, Player2Move: Defect, Player1Score: 1, Player2Score: 1},
	}

	t.Run("first round has no opponent move", func(t *testing.T) {
		in := BuildAgentInput(nil, 1, true)
		assert.Nil(t, in.OpponentLastMove)
		assert.Equal(t, 1, in.Round)
		assert.Empty(t, in.History)
	})

	t.Run("player1 perspective", func(t *testing.T) {
		in := BuildAgentInput(history, 3, true)
		require.NotNil(t, in.OpponentLastMove)
		assert.Equal(t, Defect, *in.OpponentLastMove)
		assert.Equal(t, []Turn{{Self: Cooperate, Opponent: Defect}, {Self: Defect, Opponent: Defect}}, in.History)
	})

	t.Run("player2 perspective is flipped", func(t *testing.T) {
		in := BuildAgentInput(history, 3, false)
		require.NotNil(t, in.OpponentLastMove)
		assert.Equal(t, Defect, *in.OpponentLastMove)
		assert.Equal(t, []Turn{{Self: Defect, Opponent: Cooperate}, {Self: Defect, Opponent: Defect}}, in.History)
	})
}

func TestAgentInput_Wire(t *testing.T) {
	history := []RoundResult{{Round: 1, Player1Move: Cooperate, Player2Move: Defect}}
	data, err := json.Marshal(BuildAgentInput(history, 2, false).Wire())
	require.NoError(t, err)
	assert.JSONEq(t, `{"opponent_last_move":"C","round":2,"history":[{"self":"D","op":"C"}]}`, string(data))

	data, err = json.Marshal(BuildAgentInput(nil, 1, true).Wire())
	require.NoError(t, err)
	assert.JSONEq(t, `{"opponent_last_move":null,"round":1,"history":[]}`, string(data))
}

func TestParseAgentOutput(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantMove Move
		wantErr  bool
		wantWhy  string
	}{
		{name: "cooperate with reason", payload: `{"move":"C","reason":"trust"}`, wantMove: Cooperate, wantWhy: "trust"},
		{name: "defect without reason", payload: `{"move":"D"}`, wantMove: Defect},
		{name: "invalid move", payload: `{"move":"X"}`, wantMove: Defect, wantErr: true},
		{name: "missing move", payload: `{"reason":"hmm"}`, wantMove: Defect, wantErr: true},
		{name: "non string move", payload: `{"move":1}`, wantMove: Defect, wantErr: true},
		{name: "not json", payload: `nope`, wantMove: Defect, wantErr: true},
		{name: "non string reason is dropped", payload: `{"move":"C","reason":42}`, wantMove: Cooperate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ParseAgentOutput([]byte(tt.payload))
			assert.Equal(t, tt.wantMove, out.Move)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedOutput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWhy, out.Reason)
		})
	}
}
