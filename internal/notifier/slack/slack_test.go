package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/ace-tracker/internal/metrics"
	"github.com/mauv0809/ace-tracker/internal/tennis"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func testPlayers() []tennis.Player {
	return []tennis.Player{
		{ID: "207989", Name: "Carlos Alcaraz", Country: "ESP", Ranking: 2, Stats: tennis.Record{Wins: 10, Losses: 2, Titles: 1}},
		{ID: "206173", Name: "Jannik Sinner", Country: "ITA", Ranking: 3, Stats: tennis.Record{Wins: 9, Losses: 3}},
		{ID: "126094", Name: "Grigor Dimitrov", Country: "BUL", Ranking: 14, Stats: tennis.Record{Wins: 5, Losses: 5}},
		{ID: "999001", Name: "Player 999001", Country: "Unknown", Ranking: tennis.UnrankedSentinel, Stats: tennis.Record{Wins: 1}},
	}
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	err := notifier.SendLeaderboard(testPlayers(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func TestSendLeaderboard_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	notifier := NewNotifierWithAPI(api, "C123", metrics.NewMock())
	require.NoError(t, notifier.SendLeaderboard(testPlayers(), false))
	assert.True(t, postMessageCalled, "PostMessageContext should have been called via SendLeaderboard")
}

func TestSendPlayerSummaryAndNotFound(t *testing.T) {
	posts := 0
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			posts++
			return "C123", "ts123", nil
		},
	}
	m := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", m)

	require.NoError(t, notifier.SendPlayerSummary(tennis.Summary{Player: testPlayers()[0], TotalMatches: 12}, false))
	require.NoError(t, notifier.SendPlayerNotFound("federer", false))
	assert.Equal(t, 2, posts)
	assert.Equal(t, 2, m.SlackNotifSent())

	require.NoError(t, notifier.SendPlayerSummary(tennis.Summary{Player: testPlayers()[0]}, true))
	assert.Equal(t, 2, posts, "dry run must not post")
}

func TestFormatLeaderboard(t *testing.T) {
	client := &Notifier{channelID: "C123"}

	t.Run("ranks with medals", func(t *testing.T) {
		msg := client.formatLeaderboard(testPlayers())
		require.Len(t, msg.Blocks.BlockSet, 5)

		header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
		require.True(t, ok, "first block should be a header")
		assert.Contains(t, header.Text.Text, "ATP Leaderboard")

		first, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
		require.True(t, ok)
		assert.Equal(t, "1. 🥇 Carlos Alcaraz (ESP)\n> *Ranking*: #2 | *W-L*: 10-2 | *Titles*: 1", first.Text.Text)

		third := msg.Blocks.BlockSet[3].(*slackapi.SectionBlock)
		assert.Contains(t, third.Text.Text, "🥉 Grigor Dimitrov")

		last := msg.Blocks.BlockSet[4].(*slackapi.SectionBlock)
		assert.Contains(t, last.Text.Text, "4.  Player 999001")
		assert.Contains(t, last.Text.Text, "*Ranking*: unranked")
	})

	t.Run("empty", func(t *testing.T) {
		msg := client.formatLeaderboard(nil)
		require.Len(t, msg.Blocks.BlockSet, 2)
		section := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
		assert.Contains(t, section.Text.Text, "No players available")
	})
}

func TestFormatPlayerStats(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	player := testPlayers()[0]
	player.SurfaceStats.Clay = tennis.SurfaceRecord{Wins: 4, Losses: 1, WinPercentage: 80}

	msg := client.formatPlayerStats(tennis.Summary{
		Player:        player,
		TotalMatches:  12,
		WinPercentage: 83.3,
		RecentForm:    []string{"W", "W", "L"},
	})
	require.Len(t, msg.Blocks.BlockSet, 3)

	header := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	assert.Equal(t, "🎾 Carlos Alcaraz (ESP) 🎾", header.Text.Text)

	overview := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	assert.Contains(t, overview.Text.Text, "*Record*: 10-2 (83.3%) in 12 matches")
	assert.Contains(t, overview.Text.Text, "*Recent form*: W W L")

	surfaces := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	require.Len(t, surfaces.Fields, 3)
	assert.Equal(t, "*Clay*\n4-1 (80.0%)", surfaces.Fields[1].Text)
}

func TestFormatPlayerNotFound(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	resp, err := client.FormatPlayerNotFoundResponse("federer")
	require.NoError(t, err)

	msg, ok := resp.(slackapi.Message)
	require.True(t, ok)
	section := msg.Blocks.BlockSet[0].(*slackapi.SectionBlock)
	assert.Contains(t, section.Text.Text, "*federer*")
}
