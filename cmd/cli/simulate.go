package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/mauv0809/neural-dilemma/internal/agent"
	"github.com/mauv0809/neural-dilemma/internal/game"
	"github.com/mauv0809/neural-dilemma/internal/metrics"
	"github.com/mauv0809/neural-dilemma/internal/tournament"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	simulateSeed    int64
	simulateMatches bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a daily tournament between the built-in agents locally and print the standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return simulate(cmd.Context(), cmd.OutOrStdout(), simulateSeed, simulateMatches)
	},
}

func init() {
	simulateCmd.Flags().Int64Var(&simulateSeed, "seed", time.Now().UnixNano(), "Seed for the randomised strategies")
	simulateCmd.Flags().BoolVar(&simulateMatches, "matches", false, "Print every match result")
}

func simulate(ctx context.Context, out io.Writer, seed int64, printMatches bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	metricsSvc := metrics.NewService(prometheus.NewRegistry())
	orchestrator := tournament.NewOrchestrator(game.NewRunner(metricsSvc), agent.NewDefaultRegistry(seed), metricsSvc)

	roster := agent.Roster()
	now := time.Now()
	t, err := tournament.NewDaily(tournament.DailyID(now), now.Format(time.DateOnly), roster)
	if err != nil {
		return err
	}

	var obs tournament.Observer
	if printMatches {
		obs.OnMatchComplete = func(m tournament.Match) {
			fmt.Fprintf(out, "%-10s %2d - %-2d %-10s %s\n", m.Player1.ShortName, m.Player1TotalScore, m.Player2TotalScore, m.Player2.ShortName, m.Outcome)
		}
	}

	done, err := orchestrator.Run(ctx, t, obs)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Fprintf(out, "\n%s (seed %d)\n", done.ID, seed)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tAGENT\tPTS\tW\tD\tL\tSCORE")
	for i, p := range done.Standings {
		name := p.AgentID
		if profile, ok := agent.Find(roster, p.AgentID); ok {
			name = profile.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%d\n", i+1, name, p.Points, p.Wins, p.Draws, p.Losses, p.TotalScore)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	for _, q := range done.Qualifiers {
		fmt.Fprintf(out, "qualified: %s\n", q.Name)
	}
	return nil
}
