package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewServer(arena Arena, metricsHandler http.Handler) *Server {
	server := &Server{
		Arena:          arena,
		MetricsHandler: metricsHandler,
		Router:         chi.NewRouter(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Method(http.MethodGet, "/metrics", s.MetricsHandler)
	s.Router.Method(http.MethodGet, "/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Method(http.MethodGet, "/agents", Chain(s.ListAgentsHandler(), paramsMiddleware))
	s.Router.Method(http.MethodGet, "/tournament", Chain(s.TournamentStatusHandler(), paramsMiddleware))
	s.Router.Method(http.MethodPost, "/tournament", Chain(s.TournamentActionHandler(), paramsMiddleware))
	s.Router.Method(http.MethodGet, "/tournament/matches/{matchID}", Chain(s.TournamentMatchHandler(), paramsMiddleware))
	s.Router.Method(http.MethodPost, "/match", Chain(s.PlayMatchHandler(), paramsMiddleware))
	s.Router.Method(http.MethodGet, "/weekly", Chain(s.WeeklyHandler(), paramsMiddleware))
	s.Router.Method(http.MethodPost, "/weekly/final", Chain(s.WeeklyFinalHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
