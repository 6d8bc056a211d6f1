package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(agentsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(weeklyCmd)
	rootCmd.AddCommand(finalCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(simulateCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", nil)
	},
}

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List the agents taking part in tournaments",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/agents", nil)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current daily tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/tournament", nil)
	},
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start today's tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/tournament", map[string]string{"action": "start"})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Cancel and forget the current tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/tournament", map[string]string{"action": "reset"})
	},
}

var matchCmd = &cobra.Command{
	Use:   "match <player1> <player2>",
	Short: "Play a single match between two agents",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/match", map[string]string{"player1Id": args[0], "player2Id": args[1]})
	},
}

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Show the weekly qualification table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/weekly", nil)
	},
}

var finalCmd = &cobra.Command{
	Use:   "final [player1 player2]",
	Short: "Play the weekly final, between the top two qualifiers unless two agents are given",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected no agents or two agents, got %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]string{}
		if len(args) == 2 {
			body["player1Id"], body["player2Id"] = args[0], args[1]
		}
		return performRequest(http.MethodPost, "/weekly/final", body)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", nil)
	},
}

func requestURL(endpoint string) string {
	if !dryRun {
		return host + endpoint
	}
	return host + endpoint + "?" + url.Values{"dry_run": {"true"}}.Encode()
}

func performRequest(method, endpoint string, payload any) error {
	url := requestURL(endpoint)
	fmt.Printf("Making request to %s %s\n", method, url)

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	return nil
}
