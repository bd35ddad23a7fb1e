package tennis

// RecentFormLength is how many of the latest results make up a player's form.
const RecentFormLength = 5

// Summarize derives headline figures for a player from their aggregate record
// and newest-first match history.
func Summarize(player Player, history []MatchResult) Summary {
	total := player.Stats.Wins + player.Stats.Losses

	n := min(len(history), RecentFormLength)
	form := make([]string, 0, n)
	for _, m := range history[:n] {
		if m.IsWin {
			form = append(form, "W")
		} else {
			form = append(form, "L")
		}
	}

	return Summary{
		Player:        player,
		TotalMatches:  total,
		WinPercentage: percentage(player.Stats.Wins, total),
		RecentForm:    form,
	}
}
