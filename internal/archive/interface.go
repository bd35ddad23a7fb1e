package archive

import (
	"context"

	"github.com/mauv0809/ace-tracker/internal/matchdata"
)

// Store persists the raw season export so a deployment can serve it from a
// database instead of a file. It satisfies matchdata.Loader.
type Store interface {
	matchdata.Loader
	ReplaceAll(ctx context.Context, source string, matches []matchdata.RawMatch) (ImportRun, error)
	Count(ctx context.Context) (int, error)
	LastImport(ctx context.Context) (ImportRun, bool, error)
}
