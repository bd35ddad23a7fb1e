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

func NewServer(rankings rankings.Rankings, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient, archive archive.Store) *Server {
	server := &Server{
		Rankings:       rankings,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
		Archive:        archive,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), requestIDMiddleware, paramsMiddleware, authMiddleware)
	verifySlack := slackVerifyMiddleware(s.Cfg.Slack.SigningSecret)

	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /players/{id}", Chain(s.GetPlayerHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /players/{id}/matches", Chain(s.PlayerMatchesHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /players/{id}/summary", Chain(s.PlayerSummaryHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("POST /cache/invalidate", Chain(s.InvalidateCacheHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("POST /pubsub/invalidate", Chain(s.PubSubInvalidateHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /archive/status", Chain(s.ArchiveStatusHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /notify-leaderboard", Chain(s.NotifyLeaderboardHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /notify-player", Chain(s.NotifyPlayerHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("POST /slack/command/leaderboard", Chain(s.LeaderboardCommandHandler(), requestIDMiddleware, paramsMiddleware, verifySlack))
	s.Router.Handle("POST /slack/command/player-stats", Chain(s.PlayerStatsCommandHandler(), requestIDMiddleware, paramsMiddleware, verifySlack))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
