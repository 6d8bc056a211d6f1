package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Move
		want1  int
		want2  int
	}{
		{"mutual cooperation", Cooperate, Cooperate, 3, 3},
		{"sucker", Cooperate, Defect, 0, 5},
		{"temptation", Defect, Cooperate, 5, 0},
		{"mutual defection", Defect, Defect, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got1, got2 := Score(tt.p1, tt.p2)
			assert.Equal(t, tt.want1, got1)
			assert.Equal(t, tt.want2, got2)
		})
	}
}

func TestScore_SymmetricUnderSwap(t *testing.T) {
	moves := []Move{Cooperate, Defect}
	for _, a := range moves {
		for _, b := range moves {
			a1, b1 := Score(a, b)
			b2, a2 := Score(b, a)
			assert.Equal(t, a1, a2, "%s vs %s", a, b)
			assert.Equal(t, b1, b2, "%s vs %s", a, b)
		}
	}
}

func TestMove_ZeroValueIsDefect(t *testing.T) {
	var m Move
	assert.Equal(t, Defect, m)
	assert.Equal(t, "DEFECT", m.String())
}

func TestMove_Text(t *testing.T) {
	data, err := json.Marshal(RoundResult{Round: 1, Player1Move: Cooperate, Player2Move: Defect, Player2Score: 5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"round":1,"player1Move":"COOPERATE","player2Move":"DEFECT","player1Score":0,"player2Score":5}`, string(data))

	var decoded RoundResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, Cooperate, decoded.Player1Move)

	var bad Move
	assert.Error(t, json.Unmarshal([]byte(`"X"`), &bad))
}

func TestParseShortMove(t *testing.T) {
	m, err := ParseShortMove("C")
	require.NoError(t, err)
	assert.Equal(t, Cooperate, m)

	m, err = ParseShortMove("D")
	require.NoError(t, err)
	assert.Equal(t, Defect, m)

	_, err = ParseShortMove("COOPERATE")
	assert.Error(t, err)
}
