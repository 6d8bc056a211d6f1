package tournament

import (
	"fmt"
	"time"

	"github.com/mauv0809/neural-dilemma/internal/agent"
	"github.com/mauv0809/neural-dilemma/internal/game"
)

const qualifierCount = 2

// DailyID returns the id of the daily tournament held on date.
func DailyID(date time.Time) string {
	return "daily-" + date.Format(time.DateOnly)
}

// NewMatch creates a pending match.
func NewMatch(id string, player1, player2 agent.Profile) Match {
	return Match{
		ID:          id,
		Player1:     player1,
		Player2:     player2,
		Rounds:      []game.RoundResult{},
		Status:      StatusPending,
		TotalRounds: game.RoundsPerMatch,
	}
}

// NewDaily creates a pending round robin tournament with every match already
// scheduled. Fewer than two participants yields a tournament without matches.
func NewDaily(id, date string, participants []agent.Profile) (DailyTournament, error) {
	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		if seen[p.ID] {
			return DailyTournament{}, fmt.Errorf("%w: %s", ErrDuplicateParticipant, p.ID)
		}
		seen[p.ID] = true
	}

	pairs := GeneratePairings(participants)
	matches := make([]Match, len(pairs))
	for i, pair := range pairs {
		matches[i] = NewMatch(fmt.Sprintf("%s-match-%d", id, i+1), pair.First, pair.Second)
	}

	return DailyTournament{
		ID:           id,
		Date:         date,
		Status:       StatusPending,
		Participants: append([]agent.Profile(nil), participants...),
		Matches:      matches,
		Standings:    []Points{},
		Qualifiers:   []agent.Profile{},
	}, nil
}

// Result returns the standings input of a completed match.
func (m Match) Result() Result {
	return Result{
		Player1ID:    m.Player1.ID,
		Player2ID:    m.Player2.ID,
		Winner:       m.Outcome,
		Player1Score: m.Player1TotalScore,
		Player2Score: m.Player2TotalScore,
	}
}

// Clone returns a copy that shares no memory with m.
func (m Match) Clone() Match {
	m.Rounds = append([]game.RoundResult{}, m.Rounds...)
	if m.Winner != nil {
		w := *m.Winner
		m.Winner = &w
	}
	return m
}

// Clone returns a copy that shares no memory with t.
func (t DailyTournament) Clone() DailyTournament {
	t.Participants = append([]agent.Profile{}, t.Participants...)
	matches := make([]Match, len(t.Matches))
	for i, m := range t.Matches {
		matches[i] = m.Clone()
	}
	t.Matches = matches
	t.Standings = append([]Points{}, t.Standings...)
	t.Qualifiers = append([]agent.Profile{}, t.Qualifiers...)
	return t
}

// qualifiers maps the first n standings back to participant profiles.
func qualifiers(standings []Points, participants []agent.Profile, n int) []agent.Profile {
	out := []agent.Profile{}
	for _, s := range standings {
		if len(out) == n {
			break
		}
		if p, ok := agent.Find(participants, s.AgentID); ok {
			out = append(out, p)
		}
	}
	return out
}
