package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/neural-dilemma/internal/agent"
	"github.com/mauv0809/neural-dilemma/internal/metrics"
	"github.com/mauv0809/neural-dilemma/internal/notifier"
	"github.com/mauv0809/neural-dilemma/internal/tournament"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	return NewNotifierWithAPI(slack.New(token), channelID, metrics)
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendTournamentResult(t tournament.DailyTournament, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatTournamentResult(t), dryRun)
	return err
}

func (s *Notifier) SendMatchResult(match tournament.Match, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatMatchResult(match), dryRun)
	return err
}

func (s *Notifier) SendWeeklyFinalResult(result tournament.WeeklyFinalResult, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatWeeklyFinalResult(result), dryRun)
	return err
}

func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return ""
}

func plainSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", text, true, false), nil, nil)
}

func displayName(participants []agent.Profile, id string) string {
	if p, ok := agent.Find(participants, id); ok && p.Name != "" {
		return p.Name
	}
	return id
}

// formatTournamentResult creates the Slack message for a completed daily tournament using Block Kit.
func (s *Notifier) formatTournamentResult(t tournament.DailyTournament) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏆 Daily tournament %s 🏆", t.Date), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(t.Standings) == 0 {
		blocks = append(blocks, plainSection("No matches were played."))
		return slack.NewBlockMessage(blocks...)
	}

	for i, p := range t.Standings {
		rank := i + 1
		text := fmt.Sprintf("%d. %s %s\n> Points: %d | W-D-L: %d-%d-%d | Total score: %d",
			rank,
			medal(rank),
			displayName(t.Participants, p.AgentID),
			p.Points,
			p.Wins,
			p.Draws,
			p.Losses,
			p.TotalScore,
		)
		blocks = append(blocks, plainSection(text))
	}

	if len(t.Qualifiers) > 0 {
		names := make([]string, len(t.Qualifiers))
		for i, q := range t.Qualifiers {
			names[i] = q.Name
		}
		qualified := slack.NewTextBlockObject("plain_text", "Qualified: "+strings.Join(names, ", "), true, false)
		blocks = append(blocks, slack.NewContextBlock("", qualified))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatMatchResult creates the Slack message for a single completed match using Block Kit.
func (s *Notifier) formatMatchResult(match tournament.Match) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "⚔️ Match finished! ⚔️", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	scoreText := fmt.Sprintf("%s %d - %d %s",
		match.Player1.Name, match.Player1TotalScore, match.Player2TotalScore, match.Player2.Name)
	blocks = append(blocks, plainSection(scoreText))

	moves1 := make([]string, len(match.Rounds))
	moves2 := make([]string, len(match.Rounds))
	for i, r := range match.Rounds {
		moves1[i] = r.Player1Move.Short()
		moves2[i] = r.Player2Move.Short()
	}
	movesText := fmt.Sprintf("%s: %s\n%s: %s",
		match.Player1.ShortName, strings.Join(moves1, " "),
		match.Player2.ShortName, strings.Join(moves2, " "))
	blocks = append(blocks, plainSection(movesText))

	outcome := "🤝 Draw"
	if match.Winner != nil {
		outcome = fmt.Sprintf("🏅 %s wins", match.Winner.Name)
	}
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", outcome, true, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatWeeklyFinalResult creates the Slack message for a weekly final using Block Kit.
func (s *Notifier) formatWeeklyFinalResult(result tournament.WeeklyFinalResult) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "👑 Weekly final 👑", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	seriesText := fmt.Sprintf("%s %d - %d %s (%d matches)",
		result.Player1.Name, result.Player1Wins, result.Player2Wins, result.Player2.Name, len(result.Matches))
	blocks = append(blocks, plainSection(seriesText))

	champion := "No champion this week, the final ended level."
	if result.Champion != nil {
		champion = fmt.Sprintf("%s is the weekly champion!", result.Champion.Name)
	}
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", champion, true, false)))

	return slack.NewBlockMessage(blocks...)
}
