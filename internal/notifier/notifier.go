package notifier

import "github.com/mauv0809/ace-tracker/internal/tennis"

// Notifier defines a high-level interface for sending notifications about rankings.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For scheduled and on-demand posts
	SendLeaderboard(players []tennis.Player, dryRun bool) error
	SendPlayerSummary(summary tennis.Summary, dryRun bool) error
	SendPlayerNotFound(query string, dryRun bool) error

	// For formatting responses for slash commands
	FormatLeaderboardResponse(players []tennis.Player) (any, error)
	FormatPlayerStatsResponse(summary tennis.Summary) (any, error)
	FormatPlayerNotFoundResponse(query string) (any, error)
}
