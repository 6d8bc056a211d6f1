package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/neural-dilemma/internal/arena"
)

// maxBodyBytes bounds request bodies; every request type here is tiny.
const maxBodyBytes = 1 << 16

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// decodeBody decodes an optional JSON body. An empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ListAgentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Arena.Participants())
	}
}

func (s *Server) TournamentStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Arena.Snapshot())
	}
}

func (s *Server) TournamentActionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tournamentRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		switch req.Action {
		case "start":
			isDryRun := isDryRunFromContext(r)
			t, err := s.Arena.StartDaily(r.Context(), isDryRun)
			if errors.Is(err, arena.ErrTournamentRunning) {
				http.Error(w, "Tournament already running", http.StatusConflict)
				return
			}
			if err != nil {
				log.Error("Failed to start tournament", "error", err)
				http.Error(w, "Failed to start tournament", http.StatusInternalServerError)
				return
			}
			log.Info("Tournament started", "tournamentID", t.ID, "dryRun", isDryRun)
			writeJSON(w, http.StatusAccepted, t)
		case "reset":
			s.Arena.Reset()
			writeJSON(w, http.StatusOK, statusResponse{Status: "reset"})
		default:
			http.Error(w, fmt.Sprintf("Unknown action %q", req.Action), http.StatusBadRequest)
		}
	}
}

func (s *Server) TournamentMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := chi.URLParam(r, "matchID")
		match, ok := s.Arena.Match(matchID)
		if !ok {
			http.Error(w, "Match not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, match)
	}
}

func (s *Server) PlayMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Player1ID == "" || req.Player2ID == "" {
			http.Error(w, "player1Id and player2Id are required", http.StatusBadRequest)
			return
		}

		match, err := s.Arena.PlayMatch(r.Context(), req.Player1ID, req.Player2ID, isDryRunFromContext(r))
		if errors.Is(err, arena.ErrUnknownAgent) || errors.Is(err, arena.ErrSameAgent) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Error("Failed to play match", "error", err)
			http.Error(w, "Failed to play match", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, match)
	}
}

func (s *Server) WeeklyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Arena.Weekly())
	}
}

func (s *Server) WeeklyFinalHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if (req.Player1ID == "") != (req.Player2ID == "") {
			http.Error(w, "Provide both player1Id and player2Id, or neither", http.StatusBadRequest)
			return
		}

		result, err := s.Arena.PlayWeeklyFinal(r.Context(), req.Player1ID, req.Player2ID, isDryRunFromContext(r))
		switch {
		case errors.Is(err, arena.ErrUnknownAgent), errors.Is(err, arena.ErrSameAgent):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, arena.ErrNotEnoughQualifiers):
			http.Error(w, err.Error(), http.StatusConflict)
			return
		case err != nil:
			log.Error("Failed to play weekly final", "error", err)
			http.Error(w, "Failed to play weekly final", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
