package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/ace-tracker/internal/metrics"
	"github.com/mauv0809/ace-tracker/internal/notifier"
	"github.com/mauv0809/ace-tracker/internal/tennis"
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
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
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

func (s *Notifier) SendLeaderboard(players []tennis.Player, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatLeaderboard(players), dryRun)
	return err
}

func (s *Notifier) SendPlayerSummary(summary tennis.Summary, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatPlayerStats(summary), dryRun)
	return err
}

func (s *Notifier) SendPlayerNotFound(query string, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatPlayerNotFound(query), dryRun)
	return err
}

// FormatLeaderboardResponse formats a leaderboard message for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(players []tennis.Player) (any, error) {
	return s.formatLeaderboard(players), nil
}

// FormatPlayerStatsResponse formats a player summary message for a slash command response.
func (s *Notifier) FormatPlayerStatsResponse(summary tennis.Summary) (any, error) {
	return s.formatPlayerStats(summary), nil
}

// FormatPlayerNotFoundResponse formats a player not found message for a slash command response.
func (s *Notifier) FormatPlayerNotFoundResponse(query string) (any, error) {
	return s.formatPlayerNotFound(query), nil
}

func medal(position int) string {
	switch position {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return ""
}

func rankingLabel(ranking int) string {
	if ranking == tennis.UnrankedSentinel {
		return "unranked"
	}
	return fmt.Sprintf("#%d", ranking)
}

// formatLeaderboard creates a Slack message listing players in ranking order.
func (s *Notifier) formatLeaderboard(players []tennis.Player) slack.Message {
	blocks := make([]slack.Block, 0, len(players)+1)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 ATP Leaderboard 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(players) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players available. Is the match export loaded?", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for i, p := range players {
		playerText := fmt.Sprintf("%d. %s %s (%s)\n> *Ranking*: %s | *W-L*: %d-%d | *Titles*: %d",
			i+1,
			medal(i+1),
			p.Name,
			p.Country,
			rankingLabel(p.Ranking),
			p.Stats.Wins,
			p.Stats.Losses,
			p.Stats.Titles,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", playerText, false, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerStats creates a Slack message to display a single player's summary.
func (s *Notifier) formatPlayerStats(summary tennis.Summary) slack.Message {
	p := summary.Player
	blocks := make([]slack.Block, 0, 3)

	headerText := fmt.Sprintf("🎾 %s (%s) 🎾", p.Name, p.Country)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	form := "-"
	if len(summary.RecentForm) > 0 {
		form = strings.Join(summary.RecentForm, " ")
	}
	overview := fmt.Sprintf("> *Ranking*: %s\n> *Record*: %d-%d (%.1f%%) in %d matches\n> *Titles*: %d\n> *Recent form*: %s",
		rankingLabel(p.Ranking),
		p.Stats.Wins,
		p.Stats.Losses,
		summary.WinPercentage,
		summary.TotalMatches,
		p.Stats.Titles,
		form,
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", overview, false, false), nil, nil))

	surfaces := []struct {
		name   string
		record tennis.SurfaceRecord
	}{
		{"Hard", p.SurfaceStats.Hard},
		{"Clay", p.SurfaceStats.Clay},
		{"Grass", p.SurfaceStats.Grass},
	}
	fields := make([]*slack.TextBlockObject, 0, len(surfaces))
	for _, sf := range surfaces {
		fields = append(fields, slack.NewTextBlockObject("mrkdwn",
			fmt.Sprintf("*%s*\n%d-%d (%.1f%%)", sf.name, sf.record.Wins, sf.record.Losses, sf.record.WinPercentage),
			false, false))
	}
	blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerNotFound creates a Slack message for when a player cannot be found.
func (s *Notifier) formatPlayerNotFound(query string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a player matching *%s*. Try a player id or a different name.", query)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}
