package matchdata

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// CSVLoader fetches the export with a Fetcher and parses it.
type CSVLoader struct {
	fetcher Fetcher
}

func NewCSVLoader(fetcher Fetcher) *CSVLoader {
	return &CSVLoader{fetcher: fetcher}
}

var _ Loader = (*CSVLoader)(nil)

func (l *CSVLoader) LoadMatches(ctx context.Context) ([]RawMatch, error) {
	data, err := l.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match export: %w", err)
	}

	matches, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse match export: %w", err)
	}

	log.Debug("Parsed match export", "bytes", len(data), "rows", len(matches))
	return matches, nil
}
