package tennis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Run("recent form takes the latest five", func(t *testing.T) {
		player := Player{ID: "1", Stats: Record{Wins: 4, Losses: 2}}
		history := []MatchResult{
			{IsWin: true}, {IsWin: false}, {IsWin: true}, {IsWin: true}, {IsWin: false}, {IsWin: true},
		}

		summary := Summarize(player, history)
		assert.Equal(t, 6, summary.TotalMatches)
		assert.Equal(t, 66.7, summary.WinPercentage)
		assert.Equal(t, []string{"W", "L", "W", "W", "L"}, summary.RecentForm)
		assert.Equal(t, player, summary.Player)
	})

	t.Run("no matches", func(t *testing.T) {
		summary := Summarize(Player{ID: "1"}, nil)
		assert.Zero(t, summary.TotalMatches)
		assert.Zero(t, summary.WinPercentage)
		assert.Empty(t, summary.RecentForm)
	})
}
