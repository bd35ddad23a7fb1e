package http

import (
	"net/http"

	"github.com/mauv0809/ace-tracker/internal/archive"
	"github.com/mauv0809/ace-tracker/internal/config"
	"github.com/mauv0809/ace-tracker/internal/metrics"
	"github.com/mauv0809/ace-tracker/internal/notifier"
	"github.com/mauv0809/ace-tracker/internal/pubsub"
	"github.com/mauv0809/ace-tracker/internal/rankings"
)

type Server struct {
	Rankings       rankings.Rankings
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
	// Archive is nil unless matches are served from the database.
	Archive archive.Store
}

// errorResponse is the JSON body of every non-2xx API response.
type errorResponse struct {
	Error string `json:"error"`
}

// archiveStatusResponse describes the archived export.
type archiveStatusResponse struct {
	Records    int                `json:"records"`
	LastImport *archive.ImportRun `json:"last_import,omitempty"`
}

// invalidateResponse reports a cache invalidation and its fan-out.
type invalidateResponse struct {
	EventID   string `json:"event_id"`
	Published bool   `json:"published"`
}
