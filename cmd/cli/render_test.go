package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/mauv0809/ace-tracker/internal/archive"
	"github.com/mauv0809/ace-tracker/internal/tennis"
	"github.com/stretchr/testify/assert"
)

func TestRenderPlayers(t *testing.T) {
	var buf bytes.Buffer
	renderPlayers(&buf, []tennis.Player{
		{ID: "207989", Name: "Carlos Alcaraz", Country: "ESP", Ranking: 2, Stats: tennis.Record{Wins: 10, Losses: 2, Titles: 1},
			SurfaceStats: tennis.SurfaceStats{Clay: tennis.SurfaceRecord{Wins: 4, Losses: 1, WinPercentage: 80}}},
		{ID: "999001", Name: "Player 999001", Country: "Unknown", Ranking: tennis.UnrankedSentinel},
	})

	out := buf.String()
	assert.Contains(t, out, "Carlos Alcaraz")
	assert.Contains(t, out, "4-1 (80.0%)")
	assert.Contains(t, out, "Player 999001")
	assert.NotContains(t, out, "9999")
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	renderSummary(&buf, tennis.Summary{
		Player:        tennis.Player{Name: "Jannik Sinner", Country: "ITA", Ranking: 1, Stats: tennis.Record{Wins: 3, Losses: 1}},
		TotalMatches:  4,
		WinPercentage: 75,
		RecentForm:    []string{"W", "W", "L", "W"},
	})

	out := buf.String()
	assert.Contains(t, out, "Jannik Sinner (ITA)  |  Rank: 1  |  Record: 3-1 (75.0%)")
	assert.Contains(t, out, "Form: W W L W")
}

func TestRenderMatches(t *testing.T) {
	var buf bytes.Buffer
	renderMatches(&buf, nil)
	assert.Equal(t, "No matches found.\n", buf.String())

	buf.Reset()
	renderMatches(&buf, []tennis.MatchResult{
		{Date: "20240310", Tournament: "Indian Wells", Round: "F", Surface: tennis.SurfaceHard, Opponent: "Daniil Medvedev", IsWin: true, Score: "7-6(5) 6-1"},
	})
	out := buf.String()
	assert.Contains(t, out, "Indian Wells")
	assert.Contains(t, out, "Daniil Medvedev")
	assert.Contains(t, out, "7-6(5) 6-1")
}

func TestRenderStatus(t *testing.T) {
	var buf bytes.Buffer
	renderStatus(&buf, archiveStatus{})
	assert.Contains(t, buf.String(), "0")

	buf.Reset()
	renderStatus(&buf, archiveStatus{
		Records: 2986,
		LastImport: &archive.ImportRun{
			ID:         "3b1f7c2e-run",
			Source:     "data/atp_matches_2024.csv",
			Records:    2986,
			ImportedAt: time.Date(2024, 12, 30, 8, 0, 0, 0, time.UTC),
		},
	})
	out := buf.String()
	assert.Contains(t, out, "2986")
	assert.Contains(t, out, "3b1f7c2e-run")
	assert.Contains(t, out, "2024-12-30T08:00:00Z")
}
