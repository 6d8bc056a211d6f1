package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/neural-dilemma/internal/agent"
	"github.com/mauv0809/neural-dilemma/internal/arena"
	"github.com/mauv0809/neural-dilemma/internal/config"
	"github.com/mauv0809/neural-dilemma/internal/game"
	server "github.com/mauv0809/neural-dilemma/internal/http"
	"github.com/mauv0809/neural-dilemma/internal/metrics"
	"github.com/mauv0809/neural-dilemma/internal/notifier"
	"github.com/mauv0809/neural-dilemma/internal/notifier/slack"
	"github.com/mauv0809/neural-dilemma/internal/pubsub"
	"github.com/mauv0809/neural-dilemma/internal/tournament"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	registry := agent.NewDefaultRegistry(cfg.Seed)
	roster := agent.Roster()
	for _, remote := range cfg.RemoteAgents {
		roster = registry.RegisterRemote(roster, remote.ID, remote.URL)
	}
	log.Info("Agents ready", "count", len(roster), "seed", cfg.Seed)

	runner := game.NewRunner(metricsSvc, game.WithStrategyTimeout(cfg.StrategyTimeout))
	orchestrator := tournament.NewOrchestrator(runner, registry, metricsSvc)

	var publisher pubsub.Publisher
	if cfg.ProjectID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		p, err := pubsub.New(ctx, cfg.ProjectID, metricsSvc)
		cancel()
		if err != nil {
			log.Fatalf("Failed to initialize pubsub: %s", err)
		}
		publisher = p
	} else {
		log.Warn("GCP_PROJECT not set, outcome events will not be published")
		publisher = pubsub.NewDisabled()
	}
	defer func() {
		log.Info("Closing pubsub client")
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close pubsub client", "error", err)
		}
	}()

	var n notifier.Notifier = notifier.Noop{}
	if cfg.Slack.Enabled() {
		n = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	} else {
		log.Warn("Slack not configured, notifications disabled")
	}

	arenaSvc := arena.NewService(orchestrator, publisher, n, roster, arena.WithRoundDelay(cfg.RoundDelay))
	s := server.NewServer(arenaSvc, metricsHandler)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
		// Stop any tournament still running.
		if err := arenaSvc.Shutdown(ctx); err != nil {
			log.Error("Tournament shutdown failed", "error", err)
		}
	}

	log.Info("Server process shutting down")
}
