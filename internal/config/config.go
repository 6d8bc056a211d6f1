package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const defaultStrategyTimeout = 2 * time.Second

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	cfg := Config{
		Port: getEnv("PORT"),
		Slack: SlackConfig{
			Token:     os.Getenv("SLACK_BOT_TOKEN"),
			ChannelID: os.Getenv("SLACK_CHANNEL_ID"),
		},
		ProjectID:       os.Getenv("GCP_PROJECT"),
		StrategyTimeout: getDuration("STRATEGY_TIMEOUT", defaultStrategyTimeout),
		RoundDelay:      getDuration("ROUND_DELAY", 0),
		Seed:            getSeed("RNG_SEED"),
	}

	remotes, err := ParseRemoteAgents(os.Getenv("REMOTE_AGENTS"))
	if err != nil {
		log.Fatalf("Error: invalid REMOTE_AGENTS: %s", err)
	}
	cfg.RemoteAgents = remotes
	return cfg
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		log.Warn("Invalid duration, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return d
}

func getSeed(key string) int64 {
	value, ok := os.LookupEnv(key)
	if ok && value != "" {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return seed
		}
		log.Warn("Invalid seed, using a time based one", "key", key, "value", value)
	}
	return time.Now().UnixNano()
}

// ParseRemoteAgents parses a comma separated list of id=url pairs.
func ParseRemoteAgents(value string) ([]RemoteAgent, error) {
	remotes := []RemoteAgent{}
	seen := map[string]bool{}
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		id, rawURL, ok := strings.Cut(entry, "=")
		id, rawURL = strings.TrimSpace(id), strings.TrimSpace(rawURL)
		if !ok || id == "" || rawURL == "" {
			return nil, fmt.Errorf("entry %q is not id=url", entry)
		}
		u, err := url.Parse(rawURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("entry %q has an invalid url", entry)
		}
		if seen[id] {
			return nil, fmt.Errorf("agent %q listed twice", id)
		}
		seen[id] = true
		remotes = append(remotes, RemoteAgent{ID: id, URL: rawURL})
	}
	return remotes, nil
}
