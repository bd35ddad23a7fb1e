package matchdata

import "context"

// Fetcher retrieves the raw bytes of the season export.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Loader produces the ordered raw match sequence.
// Implementations: CSVLoader (file or HTTP export) and archive.Store (database).
type Loader interface {
	LoadMatches(ctx context.Context) ([]RawMatch, error)
}
