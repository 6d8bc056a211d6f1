package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mauv0809/neural-dilemma/internal/game"
	"github.com/mauv0809/neural-dilemma/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemote_Decide(t *testing.T) {
	var received game.WireInput
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"move":"D","reason":"remote says no"}`)
	}))
	defer server.Close()

	history := []game.RoundResult{{Round: 1, Player1Move: game.Cooperate, Player2Move: game.Defect}}
	out, err := NewRemote(server.URL, nil).Decide(context.Background(), game.BuildAgentInput(history, 2, true))
	require.NoError(t, err)

	assert.Equal(t, game.Defect, out.Move)
	assert.Equal(t, "remote says no", out.Reason)
	assert.Equal(t, 2, received.Round)
	require.NotNil(t, received.OpponentLastMove)
	assert.Equal(t, "D", *received.OpponentLastMove)
	assert.Equal(t, []game.WireTurn{{Self: "C", Op: "D"}}, received.History)
}

func TestRemote_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"malformed move", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintln(w, `{"move":"X"}`)
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			out, err := NewRemote(server.URL, nil).Decide(context.Background(), game.AgentInput{Round: 1})
			require.Error(t, err)
			assert.Equal(t, game.Defect, out.Move)
		})
	}
}

func TestRemote_MalformedReplyDefectsInMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"move":"maybe"}`)
	}))
	defer server.Close()

	m := metrics.NewMock()
	runner := game.NewRunner(m, game.WithStrategyTimeout(2*time.Second))
	res, err := runner.Run(context.Background(), NewRemote(server.URL, nil), AlwaysCooperate{}, nil)
	require.NoError(t, err)

	for _, r := range res.Rounds {
		assert.Equal(t, game.Defect, r.Player1Move)
	}
	assert.Equal(t, game.WinnerPlayer1, res.Winner)
	assert.Equal(t, game.RoundsPerMatch, m.StrategyFallbacks())
}
