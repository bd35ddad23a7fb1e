package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/ace-tracker/internal/matchdata"
)

var _ Store = (*store)(nil)

type store struct {
	db *sql.DB
}

// New creates a new archive Store.
func New(db *sql.DB) Store {
	return &store{db: db}
}

// ReplaceAll swaps the archived export for matches in one transaction,
// keeping their order.
func (s *store) ReplaceAll(ctx context.Context, source string, matches []matchdata.RawMatch) (ImportRun, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportRun{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM raw_matches"); err != nil {
		return ImportRun{}, fmt.Errorf("failed to clear raw matches: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO raw_matches (seq, tourney_id, tourney_date, winner_id, loser_id, record_json)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return ImportRun{}, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range matches {
		record, err := json.Marshal(m)
		if err != nil {
			return ImportRun{}, fmt.Errorf("failed to encode record %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, i, m.TourneyID, m.TourneyDate, m.WinnerID, m.LoserID, string(record)); err != nil {
			return ImportRun{}, fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	run := ImportRun{
		ID:         uuid.NewString(),
		Source:     source,
		Records:    len(matches),
		ImportedAt: time.Now().UTC(),
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO import_runs (id, source, records, imported_at) VALUES (?, ?, ?, ?)",
		run.ID, run.Source, run.Records, run.ImportedAt.UnixMilli())
	if err != nil {
		return ImportRun{}, fmt.Errorf("failed to record import run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return ImportRun{}, fmt.Errorf("failed to commit import: %w", err)
	}
	log.Info("Replaced archived matches", "records", run.Records, "source", source, "import_id", run.ID)
	return run, nil
}

// LoadMatches returns the archived export in its original order.
func (s *store) LoadMatches(ctx context.Context) ([]matchdata.RawMatch, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT seq, record_json FROM raw_matches ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query raw matches: %w", err)
	}
	defer rows.Close()

	matches := make([]matchdata.RawMatch, 0)
	for rows.Next() {
		var seq int
		var record string
		if err := rows.Scan(&seq, &record); err != nil {
			return nil, fmt.Errorf("failed to scan raw match: %w", err)
		}
		var m matchdata.RawMatch
		if err := json.Unmarshal([]byte(record), &m); err != nil {
			log.Warn("Skipping undecodable archived record", "seq", seq, "error", err)
			continue
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read raw matches: %w", err)
	}
	return matches, nil
}

func (s *store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM raw_matches").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count raw matches: %w", err)
	}
	return n, nil
}

// LastImport returns the most recent import run, if any.
func (s *store) LastImport(ctx context.Context) (ImportRun, bool, error) {
	var run ImportRun
	var importedAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id, source, records, imported_at FROM import_runs ORDER BY imported_at DESC, rowid DESC LIMIT 1",
	).Scan(&run.ID, &run.Source, &run.Records, &importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ImportRun{}, false, nil
	}
	if err != nil {
		return ImportRun{}, false, fmt.Errorf("failed to query last import: %w", err)
	}
	run.ImportedAt = time.UnixMilli(importedAt).UTC()
	return run, true, nil
}
