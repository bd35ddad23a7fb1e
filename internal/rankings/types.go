package rankings

import "time"

// DefaultTopCount is used by ListTopPlayers when no positive count is given.
const DefaultTopCount = 20

// Options tunes a rankings service.
type Options struct {
	// ImageTemplate names player images; see tennis.DefaultImageTemplate.
	ImageTemplate string
	// LoadTimeout bounds a single fetch and parse of the export.
	LoadTimeout time.Duration
}

const defaultLoadTimeout = 30 * time.Second
