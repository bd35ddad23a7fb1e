package matchdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

var ErrNoHeader = errors.New("csv export has no header row")

// Parse decodes a header-driven CSV document into raw matches, in row order.
// Header names are trimmed, blank lines are skipped, and a row shorter than
// the header leaves the missing columns empty.
func Parse(r io.Reader) ([]RawMatch, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []RawMatch{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	names := make([]string, len(header))
	hasName := false
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		names[i] = strings.TrimSpace(h)
		if names[i] != "" {
			hasName = true
		}
	}
	if !hasName {
		return nil, ErrNoHeader
	}

	matches := make([]RawMatch, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				log.Warn("Skipping malformed CSV row", "line", parseErr.StartLine, "error", parseErr.Err)
				continue
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if isBlank(record) {
			continue
		}
		matches = append(matches, decode(names, record))
	}
	return matches, nil
}

func decode(names, record []string) RawMatch {
	var m RawMatch
	for i, name := range names {
		if name == "" {
			continue
		}
		value := ""
		if i < len(record) {
			value = record[i]
		}
		m.Set(name, value)
	}
	return m
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
