package tournament

import (
	"testing"

	"github.com/mauv0809/neural-dilemma/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleResults = []Result{
	{Player1ID: "P1", Player2ID: "P2", Winner: game.WinnerPlayer1, Player1Score: 10, Player2Score: 5},
	{Player1ID: "P1", Player2ID: "P3", Winner: game.WinnerDraw, Player1Score: 7, Player2Score: 7},
}

func TestAggregate(t *testing.T) {
	got := Aggregate(sampleResults)

	assert.Equal(t, map[string]Points{
		"P1": {AgentID: "P1", Wins: 1, Draws: 1, Losses: 0, Points: 4, TotalScore: 17},
		"P2": {AgentID: "P2", Losses: 1, Points: 0, TotalScore: 5},
		"P3": {AgentID: "P3", Draws: 1, Points: 1, TotalScore: 7},
	}, got)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	results := []Result{
		{Player1ID: "A", Player2ID: "B", Winner: game.WinnerPlayer2, Player1Score: 6, Player2Score: 11},
		{Player1ID: "A", Player2ID: "C", Winner: game.WinnerDraw, Player1Score: 21, Player2Score: 21},
		{Player1ID: "B", Player2ID: "C", Winner: game.WinnerPlayer1, Player1Score: 35, Player2Score: 0},
	}
	want := Aggregate(results)

	permutations := [][]int{{0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, perm := range permutations {
		shuffled := make([]Result, len(results))
		for i, idx := range perm {
			shuffled[i] = results[idx]
		}
		assert.Equal(t, want, Aggregate(shuffled), "permutation %v", perm)
	}
}

func TestAggregate_PointsConservation(t *testing.T) {
	got := Aggregate(sampleResults)

	var points, wins, losses, draws int
	for _, p := range got {
		points += p.Points
		wins += p.Wins
		losses += p.Losses
		draws += p.Draws
	}
	assert.Equal(t, wins, losses)
	assert.Equal(t, 3*wins+draws, points)
}

func TestStandings_SortsByPointsThenTotalScore(t *testing.T) {
	standings := Standings(sampleResults)

	require.Len(t, standings, 3)
	assert.Equal(t, "P1", standings[0].AgentID)
	assert.Equal(t, "P3", standings[1].AgentID)
	assert.Equal(t, "P2", standings[2].AgentID)
}

func TestStandings_TieOnPointsBrokenByTotalScore(t *testing.T) {
	standings := Standings([]Result{
		{Player1ID: "low", Player2ID: "high", Winner: game.WinnerDraw, Player1Score: 7, Player2Score: 7},
		{Player1ID: "low", Player2ID: "x", Winner: game.WinnerPlayer1, Player1Score: 8, Player2Score: 3},
		{Player1ID: "high", Player2ID: "y", Winner: game.WinnerPlayer1, Player1Score: 30, Player2Score: 5},
	})

	require.Len(t, standings, 4)
	assert.Equal(t, "high", standings[0].AgentID)
	assert.Equal(t, "low", standings[1].AgentID)
	assert.Equal(t, standings[0].Points, standings[1].Points)
}

func TestStandings_FullTieKeepsFirstAppearance(t *testing.T) {
	standings := Standings([]Result{
		{Player1ID: "b", Player2ID: "a", Winner: game.WinnerDraw, Player1Score: 21, Player2Score: 21},
	})

	require.Len(t, standings, 2)
	assert.Equal(t, "b", standings[0].AgentID)
	assert.Equal(t, "a", standings[1].AgentID)
}

func TestStandings_Empty(t *testing.T) {
	assert.Empty(t, Standings(nil))
}
