package rankings

import (
	"context"

	"github.com/mauv0809/ace-tracker/internal/tennis"
)

// Rankings is the read-side accessor over the season's match export.
// Every method triggers the load and aggregation pipeline on first use and
// serves cached results afterwards. Returned slices are shared with the cache
// and must not be modified.
type Rankings interface {
	ListPlayers(ctx context.Context) []tennis.Player
	GetPlayer(ctx context.Context, id string) (tennis.Player, bool)
	ListTopPlayers(ctx context.Context, count int) []tennis.Player
	GetPlayerMatches(ctx context.Context, id string) []tennis.MatchResult
	GetPlayerSummary(ctx context.Context, id string) (tennis.Summary, bool)
	InvalidateCache()
}
