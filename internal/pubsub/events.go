package pubsub

import (
	"time"

	"github.com/google/uuid"
	"github.com/mauv0809/neural-dilemma/internal/game"
	"github.com/mauv0809/neural-dilemma/internal/tournament"
)

// WinningIndex maps a match outcome to the index the market settles on.
func WinningIndex(w game.Winner) uint8 {
	switch w {
	case game.WinnerPlayer1:
		return WinningIndexPlayer1
	case game.WinnerPlayer2:
		return WinningIndexPlayer2
	}
	return WinningIndexDraw
}

// NewMatchCompletedEvent builds the event for a completed match.
// tournamentID is empty for matches played outside a tournament.
func NewMatchCompletedEvent(tournamentID string, m tournament.Match) MatchCompletedEvent {
	rounds := make([]RoundEvent, len(m.Rounds))
	for i, r := range m.Rounds {
		rounds[i] = RoundEvent{
			Round:        r.Round,
			Player1Move:  r.Player1Move.String(),
			Player2Move:  r.Player2Move.String(),
			Player1Score: r.Player1Score,
			Player2Score: r.Player2Score,
		}
	}
	return MatchCompletedEvent{
		EventID:      uuid.NewString(),
		TournamentID: tournamentID,
		MatchID:      m.ID,
		Player1ID:    m.Player1.ID,
		Player2ID:    m.Player2.ID,
		Player1Score: m.Player1TotalScore,
		Player2Score: m.Player2TotalScore,
		Winner:       string(m.Outcome),
		WinningIndex: WinningIndex(m.Outcome),
		Rounds:       rounds,
		CompletedAt:  time.Now().UTC(),
	}
}

// NewTournamentCompletedEvent builds the event for a completed daily tournament.
func NewTournamentCompletedEvent(t tournament.DailyTournament) TournamentCompletedEvent {
	standings := make([]StandingEvent, len(t.Standings))
	for i, s := range t.Standings {
		standings[i] = StandingEvent{
			AgentID:    s.AgentID,
			Wins:       s.Wins,
			Draws:      s.Draws,
			Losses:     s.Losses,
			Points:     s.Points,
			TotalScore: s.TotalScore,
		}
	}
	qualifiers := make([]string, len(t.Qualifiers))
	for i, q := range t.Qualifiers {
		qualifiers[i] = q.ID
	}
	return TournamentCompletedEvent{
		EventID:      uuid.NewString(),
		TournamentID: t.ID,
		Date:         t.Date,
		Standings:    standings,
		Qualifiers:   qualifiers,
		CompletedAt:  time.Now().UTC(),
	}
}

// NewWeeklyFinalCompletedEvent builds the event for a completed weekly final.
func NewWeeklyFinalCompletedEvent(r tournament.WeeklyFinalResult) WeeklyFinalCompletedEvent {
	e := WeeklyFinalCompletedEvent{
		EventID:     uuid.NewString(),
		FinalID:     r.ID,
		Player1ID:   r.Player1.ID,
		Player2ID:   r.Player2.ID,
		Player1Wins: r.Player1Wins,
		Player2Wins: r.Player2Wins,
		CompletedAt: time.Now().UTC(),
	}
	if r.Champion != nil {
		e.ChampionID = r.Champion.ID
	}
	return e
}
