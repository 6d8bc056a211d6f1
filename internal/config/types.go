package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	Port            string
	Slack           SlackConfig
	ProjectID       string
	StrategyTimeout time.Duration
	RoundDelay      time.Duration
	Seed            int64
	RemoteAgents    []RemoteAgent
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

// Enabled reports whether Slack notifications can be sent.
func (s SlackConfig) Enabled() bool {
	return s.Token != "" && s.ChannelID != ""
}

// RemoteAgent is an agent whose moves are decided by an HTTP endpoint.
type RemoteAgent struct {
	ID  string
	URL string
}
