package tournament

import (
	"sort"

	"github.com/mauv0809/neural-dilemma/internal/game"
)

const (
	pointsForWin  = 3
	pointsForDraw = 1
)

// Aggregate folds match results into per-agent points. The outcome does not
// depend on the order of results.
func Aggregate(results []Result) map[string]Points {
	standings := make(map[string]Points)
	for _, r := range results {
		apply(standings, r)
	}
	return standings
}

// Standings aggregates results and orders them by points, then total score.
// Remaining ties keep the order in which agents first appear in results.
func Standings(results []Result) []Points {
	totals := Aggregate(results)

	order := make([]string, 0, len(totals))
	seen := make(map[string]bool, len(totals))
	for _, r := range results {
		for _, id := range []string{r.Player1ID, r.Player2ID} {
			if !seen[id] {
				seen[id] = true
				order = append(order, id)
			}
		}
	}

	out := make([]Points, len(order))
	for i, id := range order {
		out[i] = totals[id]
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].TotalScore > out[j].TotalScore
	})
	return out
}

func apply(standings map[string]Points, r Result) {
	p1 := entry(standings, r.Player1ID)
	p2 := entry(standings, r.Player2ID)

	p1.TotalScore += r.Player1Score
	p2.TotalScore += r.Player2Score

	switch r.Winner {
	case game.WinnerPlayer1:
		p1.Wins++
		p1.Points += pointsForWin
		p2.Losses++
	case game.WinnerPlayer2:
		p2.Wins++
		p2.Points += pointsForWin
		p1.Losses++
	default:
		p1.Draws++
		p2.Draws++
		p1.Points += pointsForDraw
		p2.Points += pointsForDraw
	}

	standings[r.Player1ID] = p1
	standings[r.Player2ID] = p2
}

func entry(standings map[string]Points, id string) Points {
	if p, ok := standings[id]; ok {
		return p
	}
	return Points{AgentID: id}
}
