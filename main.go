package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/ace-tracker/internal/archive"
	"github.com/mauv0809/ace-tracker/internal/config"
	"github.com/mauv0809/ace-tracker/internal/database"
	server "github.com/mauv0809/ace-tracker/internal/http"
	"github.com/mauv0809/ace-tracker/internal/matchdata"
	"github.com/mauv0809/ace-tracker/internal/metrics"
	"github.com/mauv0809/ace-tracker/internal/notifier/slack"
	"github.com/mauv0809/ace-tracker/internal/pubsub"
	"github.com/mauv0809/ace-tracker/internal/rankings"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warn("Unknown LOG_LEVEL, keeping default", "level", cfg.LogLevel)
	}

	loader, store, db := newLoader(cfg)
	if db != nil {
		defer func() {
			log.Info("Closing database connection")
			db.Close()
		}()
	}

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	rankingsSvc := rankings.New(loader, metricsSvc, rankings.Options{
		ImageTemplate: cfg.ImageTemplate,
		LoadTimeout:   cfg.Data.FetchTimeout,
	})
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	pubsub := pubsub.New(cfg.ProjectID)
	defer pubsub.Close()

	s := server.NewServer(
		rankingsSvc,
		metricsSvc,
		metricsHandler,
		cfg,
		notifier,
		pubsub,
		store,
	)

	// Warm the cache so the first request does not pay for the load.
	go func() {
		players := rankingsSvc.ListPlayers(context.Background())
		log.Info("Rankings cache warmed", "players", len(players))
	}()

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds(), "instance_id", cfg.InstanceID)

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port, "source", cfg.Data.Source)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}

// newLoader builds the match export loader for the configured source. The
// returned archive and database are nil unless the archive is used.
func newLoader(cfg config.Config) (matchdata.Loader, archive.Store, *sql.DB) {
	switch cfg.Data.Source {
	case config.SourceHTTP:
		log.Info("Loading match export over HTTP", "url", cfg.Data.URL)
		return matchdata.NewCSVLoader(matchdata.NewHTTPFetcher(cfg.Data.URL, cfg.Data.FetchTimeout)), nil, nil
	case config.SourceDatabase:
		dbStart := time.Now()
		db, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
		if err != nil {
			log.Fatalf("Failed to initialize database: %s", err)
		}
		log.Info("Database initialization time recorded", "duration_ms", time.Since(dbStart).Milliseconds())
		store := archive.New(db)
		return store, store, db
	default:
		log.Info("Loading match export from file", "path", cfg.Data.Path)
		return matchdata.NewCSVLoader(matchdata.NewFileFetcher(cfg.Data.Path)), nil, nil
	}
}
