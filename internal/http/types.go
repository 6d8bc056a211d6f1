package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/neural-dilemma/internal/agent"
	"github.com/mauv0809/neural-dilemma/internal/arena"
	"github.com/mauv0809/neural-dilemma/internal/tournament"
)

// Arena is the part of the arena service the handlers use.
type Arena interface {
	Participants() []agent.Profile
	StartDaily(ctx context.Context, dryRun bool) (tournament.DailyTournament, error)
	Reset()
	Snapshot() arena.Snapshot
	Match(matchID string) (tournament.Match, bool)
	PlayMatch(ctx context.Context, player1ID, player2ID string, dryRun bool) (tournament.Match, error)
	Weekly() arena.Weekly
	PlayWeeklyFinal(ctx context.Context, player1ID, player2ID string, dryRun bool) (tournament.WeeklyFinalResult, error)
}

var _ Arena = (*arena.Service)(nil)

type Server struct {
	Arena          Arena
	MetricsHandler http.Handler
	Router         chi.Router
}

type tournamentRequest struct {
	Action string `json:"action"`
}

type matchRequest struct {
	Player1ID string `json:"player1Id"`
	Player2ID string `json:"player2Id"`
}

type statusResponse struct {
	Status string `json:"status"`
}
