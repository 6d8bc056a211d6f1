package tournament

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/neural-dilemma/internal/agent"
)

const (
	weeklyQualifierCount = 5
	weeklyFinalMatches   = 5
	weeklyWinsNeeded     = weeklyFinalMatches/2 + 1
)

// DailyResult is the part of a completed daily tournament kept for the week.
type DailyResult struct {
	Date      string   `json:"date"`
	Standings []Points `json:"standings"`
}

// WeeklyStanding is one agent's cumulative record across a week of daily tournaments.
type WeeklyStanding struct {
	Agent       agent.Profile `json:"agent"`
	Points      int           `json:"points"`
	TotalScore  int           `json:"totalScore"`
	DaysEntered int           `json:"daysEntered"`
}

// WeeklyFinalResult is the outcome of a best of five final.
type WeeklyFinalResult struct {
	ID          string         `json:"id"`
	Player1     agent.Profile  `json:"player1"`
	Player2     agent.Profile  `json:"player2"`
	Player1Wins int            `json:"player1Wins"`
	Player2Wins int            `json:"player2Wins"`
	Matches     []Match        `json:"matches"`
	Champion    *agent.Profile `json:"champion"` // nil when the wins are level
}

// QualifyForWeekly sums daily points per agent and returns the top five.
// Ties keep the order in which agents first appear across days. Agents missing
// from profiles are skipped.
func QualifyForWeekly(days []DailyResult, profiles []agent.Profile) []WeeklyStanding {
	totals := make(map[string]*WeeklyStanding)
	order := []string{}
	for _, day := range days {
		for _, p := range day.Standings {
			ws, ok := totals[p.AgentID]
			if !ok {
				profile, found := agent.Find(profiles, p.AgentID)
				if !found {
					continue
				}
				ws = &WeeklyStanding{Agent: profile}
				totals[p.AgentID] = ws
				order = append(order, p.AgentID)
			}
			ws.Points += p.Points
			ws.TotalScore += p.TotalScore
			ws.DaysEntered++
		}
	}

	out := make([]WeeklyStanding, len(order))
	for i, id := range order {
		out[i] = *totals[id]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Points > out[j].Points
	})
	if len(out) > weeklyQualifierCount {
		out = out[:weeklyQualifierCount]
	}
	return out
}

// RunWeeklyFinal plays up to five matches between player1 and player2 and
// stops as soon as one side has three wins. Drawn matches count for nobody.
// onMatchComplete, if set, is called after each match.
func (o *Orchestrator) RunWeeklyFinal(ctx context.Context, id string, player1, player2 agent.Profile, onMatchComplete func(Match)) (WeeklyFinalResult, error) {
	result := WeeklyFinalResult{
		ID:      id,
		Player1: player1,
		Player2: player2,
		Matches: []Match{},
	}
	log.Info("Weekly final started", "finalID", id, "player1", player1.ID, "player2", player2.ID)

	for i := 1; i <= weeklyFinalMatches; i++ {
		if result.Player1Wins == weeklyWinsNeeded || result.Player2Wins == weeklyWinsNeeded {
			break
		}
		match := NewMatch(fmt.Sprintf("%s-match-%d", id, i), player1, player2)
		completed, err := o.PlayMatch(ctx, match, Observer{OnMatchComplete: onMatchComplete})
		if err != nil {
			return WeeklyFinalResult{}, fmt.Errorf("weekly final %s: %w", id, err)
		}
		result.Matches = append(result.Matches, completed)
		if completed.Winner == nil {
			continue
		}
		switch completed.Winner.ID {
		case player1.ID:
			result.Player1Wins++
		case player2.ID:
			result.Player2Wins++
		}
	}

	switch {
	case result.Player1Wins > result.Player2Wins:
		c := player1
		result.Champion = &c
	case result.Player2Wins > result.Player1Wins:
		c := player2
		result.Champion = &c
	}
	log.Info("Weekly final completed", "finalID", id, "player1Wins", result.Player1Wins, "player2Wins", result.Player2Wins)
	return result, nil
}
