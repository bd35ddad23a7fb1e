package tennis

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/mauv0809/ace-tracker/internal/matchdata"
)

// AggregatePlayers builds one Player per identifier seen in matches, sorted
// ascending by ranking. Ties keep the order in which players were first seen.
// An empty imageTemplate falls back to DefaultImageTemplate.
func AggregatePlayers(matches []matchdata.RawMatch, imageTemplate string) []Player {
	if imageTemplate == "" {
		imageTemplate = DefaultImageTemplate
	}

	players := make([]*Player, 0)
	byID := make(map[string]*Player)

	lookup := func(id, name, ioc, rank string) *Player {
		if p, ok := byID[id]; ok {
			return p
		}
		if name == "" {
			name = "Player " + id
		}
		if ioc == "" {
			ioc = DefaultCountry
		}
		p := &Player{
			ID:       id,
			Name:     name,
			Country:  ioc,
			FlagURL:  FlagURL(ioc, 0),
			Ranking:  ParseRanking(rank),
			ImageURL: ImageURL(imageTemplate, id),
		}
		byID[id] = p
		players = append(players, p)
		return p
	}

	for _, m := range matches {
		if m.WinnerID == "" || m.LoserID == "" {
			continue
		}

		winner := lookup(m.WinnerID, m.WinnerName, m.WinnerIOC, m.WinnerRank)
		loser := lookup(m.LoserID, m.LoserName, m.LoserIOC, m.LoserRank)

		winner.Stats.Wins++
		loser.Stats.Losses++

		// Carpet and unknown surfaces count in the totals only.
		if w, l := winner.SurfaceStats.bucket(m.Surface), loser.SurfaceStats.bucket(m.Surface); w != nil && l != nil {
			w.Wins++
			l.Losses++
		}

		if m.Round == "F" {
			winner.Stats.Titles++
		}
	}

	result := make([]Player, len(players))
	for i, p := range players {
		p.SurfaceStats.Hard.finalize()
		p.SurfaceStats.Clay.finalize()
		p.SurfaceStats.Grass.finalize()
		result[i] = *p
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Ranking < result[j].Ranking
	})
	return result
}

func (s *SurfaceStats) bucket(surface string) *SurfaceRecord {
	switch Surface(strings.ToLower(surface)) {
	case SurfaceHard:
		return &s.Hard
	case SurfaceClay:
		return &s.Clay
	case SurfaceGrass:
		return &s.Grass
	}
	return nil
}

func (r *SurfaceRecord) finalize() {
	r.WinPercentage = percentage(r.Wins, r.Wins+r.Losses)
}

// percentage returns part/total*100 rounded to one decimal, or 0 for an empty total.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

// ParseRanking reads the leading integer of a rank field. Missing, unparseable
// and zero ranks map to UnrankedSentinel.
func ParseRanking(rank string) int {
	s := strings.TrimSpace(rank)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n == 0 {
		return UnrankedSentinel
	}
	return n
}

// ImageURL derives a player's primary image reference from their id.
func ImageURL(template, id string) string {
	return fmt.Sprintf(template, id)
}
