package tournament

import (
	"errors"

	"github.com/mauv0809/neural-dilemma/internal/agent"
	"github.com/mauv0809/neural-dilemma/internal/game"
)

var (
	ErrTournamentCompleted  = errors.New("tournament already completed")
	ErrTournamentInProgress = errors.New("tournament already in progress")
	ErrDuplicateParticipant = errors.New("duplicate participant")
	ErrMatchNotPending      = errors.New("match is not pending")
)

// Status is the lifecycle state of a match or a tournament.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Match is one pairing between two participants.
type Match struct {
	ID                string             `json:"id"`
	Player1           agent.Profile      `json:"player1"`
	Player2           agent.Profile      `json:"player2"`
	Rounds            []game.RoundResult `json:"rounds"`
	Status            Status             `json:"status"`
	Outcome           game.Winner        `json:"outcome,omitempty"`
	Winner            *agent.Profile     `json:"winner"` // nil until completed, and for draws
	Player1TotalScore int                `json:"player1TotalScore"`
	Player2TotalScore int                `json:"player2TotalScore"`
	TotalRounds       int                `json:"totalRounds"`
	CurrentRound      int                `json:"currentRound"`
}

// Result is the part of a completed match the standings are built from.
type Result struct {
	Player1ID    string
	Player2ID    string
	Winner       game.Winner
	Player1Score int
	Player2Score int
}

// Points is one agent's standing in a tournament.
type Points struct {
	AgentID    string `json:"agentId"`
	Wins       int    `json:"wins"`
	Draws      int    `json:"draws"`
	Losses     int    `json:"losses"`
	Points     int    `json:"points"`
	TotalScore int    `json:"totalScore"`
}

// DailyTournament is a round robin between all participants.
type DailyTournament struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	Status       Status          `json:"status"`
	Participants []agent.Profile `json:"participants"`
	Matches      []Match         `json:"matches"`
	Standings    []Points        `json:"standings"`
	Qualifiers   []agent.Profile `json:"topTwoQualifiers"`
}

// Observer receives progress while a tournament runs. Every field is optional
// and every value passed is a copy.
type Observer struct {
	OnMatchStart    func(match Match)
	OnRoundComplete func(match Match, round game.RoundResult)
	OnMatchComplete func(match Match)
}

// Resolver finds the strategy playing for an agent.
type Resolver interface {
	Resolve(agentID string) game.Strategy
}
