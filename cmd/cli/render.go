package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mauv0809/ace-tracker/internal/archive"
	"github.com/mauv0809/ace-tracker/internal/tennis"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func rankLabel(ranking int) string {
	if ranking == tennis.UnrankedSentinel {
		return "-"
	}
	return strconv.Itoa(ranking)
}

func surfaceCell(r tennis.SurfaceRecord) string {
	return fmt.Sprintf("%d-%d (%.1f%%)", r.Wins, r.Losses, r.WinPercentage)
}

// renderPlayers prints the leaderboard table.
func renderPlayers(w io.Writer, players []tennis.Player) {
	table := newTable(w)
	table.Header("#", "RANK", "ID", "NAME", "IOC", "W", "L", "TITLES", "HARD", "CLAY", "GRASS")

	for i, p := range players {
		table.Append(
			strconv.Itoa(i+1),
			rankLabel(p.Ranking),
			p.ID,
			p.Name,
			p.Country,
			strconv.Itoa(p.Stats.Wins),
			strconv.Itoa(p.Stats.Losses),
			strconv.Itoa(p.Stats.Titles),
			surfaceCell(p.SurfaceStats.Hard),
			surfaceCell(p.SurfaceStats.Clay),
			surfaceCell(p.SurfaceStats.Grass),
		)
	}
	table.Render()
}

// renderSummary prints a one-line header followed by the per-surface table.
func renderSummary(w io.Writer, s tennis.Summary) {
	p := s.Player
	form := strings.Join(s.RecentForm, " ")
	if form == "" {
		form = "-"
	}
	fmt.Fprintf(w, "\n%s (%s)  |  Rank: %s  |  Record: %d-%d (%.1f%%)  |  Titles: %d  |  Form: %s\n\n",
		p.Name, p.Country, rankLabel(p.Ranking), p.Stats.Wins, p.Stats.Losses, s.WinPercentage, p.Stats.Titles, form)

	table := newTable(w)
	table.Header("SURFACE", "W", "L", "WIN%")
	for _, row := range []struct {
		name string
		rec  tennis.SurfaceRecord
	}{
		{"hard", p.SurfaceStats.Hard},
		{"clay", p.SurfaceStats.Clay},
		{"grass", p.SurfaceStats.Grass},
	} {
		table.Append(row.name, strconv.Itoa(row.rec.Wins), strconv.Itoa(row.rec.Losses), fmt.Sprintf("%.1f", row.rec.WinPercentage))
	}
	table.Render()
}

// renderMatches prints a player's match history.
func renderMatches(w io.Writer, matches []tennis.MatchResult) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No matches found.")
		return
	}

	table := newTable(w)
	table.Header("DATE", "TOURNAMENT", "ROUND", "SURFACE", "OPPONENT", "RESULT", "SCORE")
	for _, m := range matches {
		result := "L"
		if m.IsWin {
			result = "W"
		}
		table.Append(m.Date, m.Tournament, m.Round, string(m.Surface), m.Opponent, result, m.Score)
	}
	table.Render()
}

// archiveStatus mirrors the server's /archive/status body.
type archiveStatus struct {
	Records    int                `json:"records"`
	LastImport *archive.ImportRun `json:"last_import,omitempty"`
}

func renderStatus(w io.Writer, s archiveStatus) {
	table := newTable(w)
	table.Header("RECORDS", "LAST IMPORT", "SOURCE", "IMPORTED AT")
	if s.LastImport == nil {
		table.Append(strconv.Itoa(s.Records), "-", "-", "-")
	} else {
		table.Append(strconv.Itoa(s.Records), s.LastImport.ID, s.LastImport.Source, s.LastImport.ImportedAt.Format(time.RFC3339))
	}
	table.Render()
}
