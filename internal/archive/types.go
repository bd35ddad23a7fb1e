package archive

import "time"

// ImportRun records one replacement of the archived export.
type ImportRun struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Records    int       `json:"records"`
	ImportedAt time.Time `json:"imported_at"`
}
