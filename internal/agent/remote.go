package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/neural-dilemma/internal/game"
)

// maxReplyBytes caps how much of an agent reply is read.
const maxReplyBytes = 64 << 10

// Remote is a strategy backed by an HTTP endpoint. Each round the agent
// input is POSTed as JSON and the reply must be {"move":"C"|"D","reason":"..."}.
type Remote struct {
	endpoint   string
	httpClient *http.Client
}

var _ game.Strategy = (*Remote)(nil)

// NewRemote creates a Remote strategy. A nil httpClient gets a default
// client with a 10 second timeout.
func NewRemote(endpoint string, httpClient *http.Client) *Remote {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Remote{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

func (r *Remote) Decide(ctx context.Context, in game.AgentInput) (game.AgentOutput, error) {
	body, err := json.Marshal(in.Wire())
	if err != nil {
		return game.AgentOutput{}, fmt.Errorf("failed to encode agent input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return game.AgentOutput{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	log.Debug("Requesting move from remote agent", "url", r.endpoint, "round", in.Round)
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return game.AgentOutput{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	reply, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return game.AgentOutput{}, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Error("Received non-OK HTTP status from remote agent", "status", resp.StatusCode, "body", string(reply))
		return game.AgentOutput{}, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	out, err := game.ParseAgentOutput(reply)
	if err != nil {
		return out, fmt.Errorf("remote agent %s: %w", r.endpoint, err)
	}
	return out, nil
}
