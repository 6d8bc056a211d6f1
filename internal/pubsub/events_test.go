package pubsub

import (
	"testing"

	"github.com/mauv0809/neural-dilemma/internal/agent"
	"github.com/mauv0809/neural-dilemma/internal/game"
	"github.com/mauv0809/neural-dilemma/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinningIndex(t *testing.T) {
	assert.Equal(t, uint8(0), WinningIndex(game.WinnerPlayer1))
	assert.Equal(t, uint8(1), WinningIndex(game.WinnerPlayer2))
	assert.Equal(t, uint8(255), WinningIndex(game.WinnerDraw))
}

func TestNewMatchCompletedEvent(t *testing.T) {
	grok := agent.Profile{ID: "grok"}
	claude := agent.Profile{ID: "claude"}
	match := tournament.Match{
		ID:      "daily-2026-10-19-match-1",
		Player1: grok,
		Player2: claude,
		Rounds: []game.RoundResult{
			{Round: 1, Player1Move: game.Defect, Player2Move: game.Cooperate, Player1Score: 5, Player2Score: 0},
		},
		Status:            tournament.StatusCompleted,
		Outcome:           game.WinnerPlayer1,
		Winner:            &grok,
		Player1TotalScore: 5,
		Player2TotalScore: 0,
	}

	e := NewMatchCompletedEvent("daily-2026-10-19", match)

	assert.NotEmpty(t, e.EventID)
	assert.Equal(t, "daily-2026-10-19", e.TournamentID)
	assert.Equal(t, "grok", e.Player1ID)
	assert.Equal(t, "player1", e.Winner)
	assert.Equal(t, WinningIndexPlayer1, e.WinningIndex)
	require.Len(t, e.Rounds, 1)
	assert.Equal(t, "DEFECT", e.Rounds[0].Player1Move)
	assert.Equal(t, "COOPERATE", e.Rounds[0].Player2Move)
	assert.False(t, e.CompletedAt.IsZero())
}

func TestNewTournamentCompletedEvent(t *testing.T) {
	d := tournament.DailyTournament{
		ID:   "daily-2026-10-19",
		Date: "2026-10-19",
		Standings: []tournament.Points{
			{AgentID: "grok", Wins: 2, Points: 6, TotalScore: 46},
			{AgentID: "claude", Draws: 1, Losses: 1, Points: 1, TotalScore: 21},
		},
		Qualifiers: []agent.Profile{{ID: "grok"}, {ID: "claude"}},
	}

	e := NewTournamentCompletedEvent(d)

	assert.Equal(t, "daily-2026-10-19", e.TournamentID)
	assert.Equal(t, []string{"grok", "claude"}, e.Qualifiers)
	require.Len(t, e.Standings, 2)
	assert.Equal(t, StandingEvent{AgentID: "grok", Wins: 2, Points: 6, TotalScore: 46}, e.Standings[0])
}

func TestNewWeeklyFinalCompletedEvent(t *testing.T) {
	p1, p2 := agent.Profile{ID: "grok"}, agent.Profile{ID: "claude"}

	e := NewWeeklyFinalCompletedEvent(tournament.WeeklyFinalResult{ID: "weekly", Player1: p1, Player2: p2})
	assert.Empty(t, e.ChampionID)

	e = NewWeeklyFinalCompletedEvent(tournament.WeeklyFinalResult{ID: "weekly", Player1: p1, Player2: p2, Player1Wins: 3, Champion: &p1})
	assert.Equal(t, "grok", e.ChampionID)
	assert.Equal(t, 3, e.Player1Wins)
}
