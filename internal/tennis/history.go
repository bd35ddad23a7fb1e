package tennis

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mauv0809/ace-tracker/internal/matchdata"
)

const (
	unknownTournament = "Unknown Tournament"
	unknownRound      = "Unknown Round"
	unknownOpponent   = "Unknown Player"
	unknownScore      = "N/A"
	defaultMatchDate  = "20240101"
)

// PlayerMatches returns every match in which playerID was the winner or the
// loser, newest first. Matches with equal (or unparseable) dates keep their
// source order.
func PlayerMatches(playerID string, matches []matchdata.RawMatch) []MatchResult {
	type dated struct {
		result MatchResult
		at     time.Time
	}

	if playerID == "" {
		return []MatchResult{}
	}

	found := make([]dated, 0)

	for _, m := range matches {
		isWin := m.WinnerID == playerID
		if !isWin && m.LoserID != playerID {
			continue
		}

		opponent := m.LoserName
		if !isWin {
			opponent = m.WinnerName
		}

		tourneyID := orDefault(m.TourneyID, "unknown")
		matchNum := orDefault(m.MatchNum, strconv.Itoa(len(found)))
		date := orDefault(m.TourneyDate, defaultMatchDate)

		found = append(found, dated{
			result: MatchResult{
				ID:         tourneyID + "-" + matchNum,
				Tournament: orDefault(m.TourneyName, unknownTournament),
				Round:      orDefault(m.Round, unknownRound),
				Opponent:   orDefault(opponent, unknownOpponent),
				Score:      orDefault(m.Score, unknownScore),
				Date:       date,
				Surface:    NormalizeSurface(m.Surface),
				IsWin:      isWin,
			},
			at: ParseMatchDate(date),
		})
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].at.After(found[j].at)
	})

	results := make([]MatchResult, len(found))
	for i, d := range found {
		results[i] = d.result
	}
	return results
}

// NormalizeSurface maps a free-form surface to one of the known values,
// defaulting to hard.
func NormalizeSurface(surface string) Surface {
	switch s := Surface(strings.ToLower(surface)); s {
	case SurfaceClay, SurfaceGrass, SurfaceCarpet:
		return s
	}
	return SurfaceHard
}

var fallbackDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ParseMatchDate reads an eight-character YYYYMMDD date. Anything else is
// tried against a few common layouts; dates that cannot be read return the
// zero time, which sorts after every real date.
func ParseMatchDate(date string) time.Time {
	if len(date) == 8 {
		year, errY := strconv.Atoi(date[0:4])
		month, errM := strconv.Atoi(date[4:6])
		day, errD := strconv.Atoi(date[6:8])
		if errY != nil || errM != nil || errD != nil {
			return time.Time{}
		}
		// time.Date normalizes out-of-range months and days.
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	}

	trimmed := strings.TrimSpace(date)
	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t
		}
	}
	return time.Time{}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
