package tennis

import (
	"testing"

	"github.com/mauv0809/ace-tracker/internal/matchdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findPlayer(t *testing.T, players []Player, id string) Player {
	t.Helper()
	for _, p := range players {
		if p.ID == id {
			return p
		}
	}
	require.Failf(t, "player not found", "id %s", id)
	return Player{}
}

func TestAggregatePlayers(t *testing.T) {
	t.Run("clay final credits winner and loser", func(t *testing.T) {
		players := AggregatePlayers([]matchdata.RawMatch{
			{WinnerID: "104925", LoserID: "106233", Surface: "Clay", Round: "F"},
		}, "")
		require.Len(t, players, 2)

		winner := findPlayer(t, players, "104925")
		assert.Equal(t, 1, winner.Stats.Wins)
		assert.Equal(t, 1, winner.Stats.Titles)
		assert.Equal(t, 1, winner.SurfaceStats.Clay.Wins)
		assert.Equal(t, 100.0, winner.SurfaceStats.Clay.WinPercentage)

		loser := findPlayer(t, players, "106233")
		assert.Equal(t, 1, loser.Stats.Losses)
		assert.Equal(t, 0, loser.Stats.Titles)
		assert.Equal(t, 1, loser.SurfaceStats.Clay.Losses)
		assert.Equal(t, 0.0, loser.SurfaceStats.Clay.WinPercentage)
	})

	t.Run("carpet counts only in totals", func(t *testing.T) {
		players := AggregatePlayers([]matchdata.RawMatch{
			{WinnerID: "1", LoserID: "2", Surface: "Carpet"},
		}, "")

		winner := findPlayer(t, players, "1")
		assert.Equal(t, 1, winner.Stats.Wins)
		assert.Equal(t, SurfaceStats{}, winner.SurfaceStats)

		loser := findPlayer(t, players, "2")
		assert.Equal(t, 1, loser.Stats.Losses)
		assert.Equal(t, SurfaceStats{}, loser.SurfaceStats)
	})

	t.Run("blank and unknown surfaces are not bucketed", func(t *testing.T) {
		players := AggregatePlayers([]matchdata.RawMatch{
			{WinnerID: "1", LoserID: "2", Surface: ""},
			{WinnerID: "1", LoserID: "2", Surface: "Indoor"},
			{WinnerID: "1", LoserID: "2", Surface: "HARD"},
			{WinnerID: "1", LoserID: "2", Surface: " Clay "},
		}, "")

		winner := findPlayer(t, players, "1")
		assert.Equal(t, 4, winner.Stats.Wins)
		assert.Equal(t, 1, winner.SurfaceStats.Hard.Wins)
		assert.Zero(t, winner.SurfaceStats.Clay.Wins+winner.SurfaceStats.Grass.Wins)
	})

	t.Run("records missing an identifier are skipped", func(t *testing.T) {
		players := AggregatePlayers([]matchdata.RawMatch{
			{WinnerID: "", LoserID: "2", Surface: "Hard"},
			{WinnerID: "1", LoserID: "", Surface: "Hard", Round: "F"},
		}, "")
		assert.Empty(t, players)
	})

	t.Run("defaults for missing fields", func(t *testing.T) {
		players := AggregatePlayers([]matchdata.RawMatch{
			{WinnerID: "7", LoserID: "8", WinnerName: "Jannik Sinner", WinnerIOC: "ITA", WinnerRank: "1"},
		}, "")
		require.Len(t, players, 2)

		assert.Equal(t, Player{
			ID:       "7",
			Name:     "Jannik Sinner",
			Country:  "ITA",
			FlagURL:  "https://flagcdn.com/w20/it.png",
			Ranking:  1,
			ImageURL: "/images/players/7.jpg",
			Stats:    Record{Wins: 1},
		}, players[0])

		assert.Equal(t, "Player 8", players[1].Name)
		assert.Equal(t, DefaultCountry, players[1].Country)
		assert.Equal(t, "https://flagcdn.com/w20/un.png", players[1].FlagURL)
		assert.Equal(t, UnrankedSentinel, players[1].Ranking)
		assert.Zero(t, players[1].RankingChange)
	})

	t.Run("first sighting fixes name and ranking", func(t *testing.T) {
		players := AggregatePlayers([]matchdata.RawMatch{
			{WinnerID: "1", LoserID: "2", WinnerName: "First", WinnerRank: "5"},
			{WinnerID: "2", LoserID: "1", LoserName: "Second", LoserRank: "3"},
		}, "")

		p := findPlayer(t, players, "1")
		assert.Equal(t, "First", p.Name)
		assert.Equal(t, 5, p.Ranking)
	})

	t.Run("sorted by ranking with stable ties and unranked last", func(t *testing.T) {
		players := AggregatePlayers([]matchdata.RawMatch{
			{WinnerID: "a", LoserID: "b", WinnerRank: "", LoserRank: "10"},
			{WinnerID: "c", LoserID: "d", WinnerRank: "10", LoserRank: "2"},
			{WinnerID: "e", LoserID: "f", WinnerRank: "abc", LoserRank: "0"},
		}, "")

		ids := make([]string, 0, len(players))
		for _, p := range players {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"d", "b", "c", "a", "e", "f"}, ids)
	})

	t.Run("totals match appearances and buckets never exceed totals", func(t *testing.T) {
		matches := []matchdata.RawMatch{
			{WinnerID: "1", LoserID: "2", Surface: "Hard"},
			{WinnerID: "2", LoserID: "3", Surface: "Clay"},
			{WinnerID: "3", LoserID: "1", Surface: "Grass"},
			{WinnerID: "1", LoserID: "3", Surface: "Carpet"},
			{WinnerID: "1", LoserID: "2", Surface: ""},
		}
		players := AggregatePlayers(matches, "")

		for _, p := range players {
			wins, losses := 0, 0
			for _, m := range matches {
				if m.WinnerID == p.ID {
					wins++
				}
				if m.LoserID == p.ID {
					losses++
				}
			}
			assert.Equal(t, wins, p.Stats.Wins, p.ID)
			assert.Equal(t, losses, p.Stats.Losses, p.ID)

			s := p.SurfaceStats
			bucketed := s.Hard.Wins + s.Hard.Losses + s.Clay.Wins + s.Clay.Losses + s.Grass.Wins + s.Grass.Losses
			assert.LessOrEqual(t, bucketed, p.Stats.Wins+p.Stats.Losses, p.ID)
		}
	})

	t.Run("win percentage rounds to one decimal", func(t *testing.T) {
		players := AggregatePlayers([]matchdata.RawMatch{
			{WinnerID: "1", LoserID: "2", Surface: "Grass"},
			{WinnerID: "1", LoserID: "2", Surface: "Grass"},
			{WinnerID: "2", LoserID: "1", Surface: "Grass"},
		}, "")

		p := findPlayer(t, players, "1")
		assert.Equal(t, 66.7, p.SurfaceStats.Grass.WinPercentage)
		assert.Equal(t, 0.0, p.SurfaceStats.Hard.WinPercentage)
	})

	t.Run("custom image template", func(t *testing.T) {
		players := AggregatePlayers([]matchdata.RawMatch{{WinnerID: "1", LoserID: "2"}}, "https://cdn.example.com/%s.png")
		assert.Equal(t, "https://cdn.example.com/1.png", findPlayer(t, players, "1").ImageURL)
	})

	t.Run("empty input", func(t *testing.T) {
		players := AggregatePlayers(nil, "")
		assert.NotNil(t, players)
		assert.Empty(t, players)
	})
}

func TestParseRanking(t *testing.T) {
	tests := map[string]int{
		"1":     1,
		" 42 ":  42,
		"12.5":  12,
		"7th":   7,
		"":      UnrankedSentinel,
		"NR":    UnrankedSentinel,
		"0":     UnrankedSentinel,
		"-":     UnrankedSentinel,
		"+3":    3,
		"00015": 15,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseRanking(in), "input %q", in)
	}
}
