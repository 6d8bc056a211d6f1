package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/mauv0809/neural-dilemma/internal/metrics"
)

type client struct {
	client  *pubsub.Client
	metrics metrics.Metrics
}

type disabled struct{}

// EventType is the topic an event is published on.
type EventType string

const (
	EventMatchCompleted       EventType = "match-completed"
	EventTournamentCompleted  EventType = "tournament-completed"
	EventWeeklyFinalCompleted EventType = "weekly-final-completed"
)

// Topics lists every topic the arena publishes on.
var Topics = []EventType{EventMatchCompleted, EventTournamentCompleted, EventWeeklyFinalCompleted}

// WinningIndex values as read by the market settlement side.
const (
	WinningIndexPlayer1 uint8 = 0
	WinningIndexPlayer2 uint8 = 1
	WinningIndexDraw    uint8 = 255
)

// RoundEvent is one round of a completed match.
type RoundEvent struct {
	Round        int    `msgpack:"round"`
	Player1Move  string `msgpack:"player1Move"`
	Player2Move  string `msgpack:"player2Move"`
	Player1Score int    `msgpack:"player1Score"`
	Player2Score int    `msgpack:"player2Score"`
}

// MatchCompletedEvent settles a single match.
type MatchCompletedEvent struct {
	EventID      string       `msgpack:"eventId"`
	TournamentID string       `msgpack:"tournamentId,omitempty"`
	MatchID      string       `msgpack:"matchId"`
	Player1ID    string       `msgpack:"player1Id"`
	Player2ID    string       `msgpack:"player2Id"`
	Player1Score int          `msgpack:"player1Score"`
	Player2Score int          `msgpack:"player2Score"`
	Winner       string       `msgpack:"winner"`
	WinningIndex uint8        `msgpack:"winningIndex"`
	Rounds       []RoundEvent `msgpack:"rounds"`
	CompletedAt  time.Time    `msgpack:"completedAt"`
}

// StandingEvent is one row of final standings.
type StandingEvent struct {
	AgentID    string `msgpack:"agentId"`
	Wins       int    `msgpack:"wins"`
	Draws      int    `msgpack:"draws"`
	Losses     int    `msgpack:"losses"`
	Points     int    `msgpack:"points"`
	TotalScore int    `msgpack:"totalScore"`
}

// TournamentCompletedEvent settles a daily tournament.
type TournamentCompletedEvent struct {
	EventID      string          `msgpack:"eventId"`
	TournamentID string          `msgpack:"tournamentId"`
	Date         string          `msgpack:"date"`
	Standings    []StandingEvent `msgpack:"standings"`
	Qualifiers   []string        `msgpack:"qualifiers"`
	CompletedAt  time.Time       `msgpack:"completedAt"`
}

// WeeklyFinalCompletedEvent settles a weekly final. ChampionID is empty when
// the final ended level.
type WeeklyFinalCompletedEvent struct {
	EventID     string    `msgpack:"eventId"`
	FinalID     string    `msgpack:"finalId"`
	Player1ID   string    `msgpack:"player1Id"`
	Player2ID   string    `msgpack:"player2Id"`
	Player1Wins int       `msgpack:"player1Wins"`
	Player2Wins int       `msgpack:"player2Wins"`
	ChampionID  string    `msgpack:"championId"`
	CompletedAt time.Time `msgpack:"completedAt"`
}
