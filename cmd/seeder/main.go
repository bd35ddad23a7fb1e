package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/ace-tracker/internal/archive"
	"github.com/mauv0809/ace-tracker/internal/database"
	"github.com/mauv0809/ace-tracker/internal/matchdata"
	"github.com/mauv0809/ace-tracker/internal/pubsub"
	"github.com/vmihailenco/msgpack/v5"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	for _, key := range []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN", "DB_NAME", "GCP_PROJECT", "INVALIDATION_TOPIC", "INSTANCE_ID"} {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	if config["DB_NAME"] == "" {
		config["DB_NAME"] = "ace-tracker.db"
	}
	if config["INVALIDATION_TOPIC"] == "" {
		config["INVALIDATION_TOPIC"] = "cache-invalidated"
	}
	if config["INSTANCE_ID"] == "" {
		config["INSTANCE_ID"] = "seeder"
	}
	return config
}

func main() {
	csvPath := flag.String("csv", "data/atp_matches_2024.csv", "Path to the season match export")
	csvURL := flag.String("url", "", "Fetch the export over HTTP instead of reading --csv")
	dbName := flag.String("db", "", "Local SQLite file (defaults to DB_NAME)")
	notify := flag.Bool("notify", true, "Publish a cache invalidation event after importing")
	pushURL := flag.String("push", "", "Deliver the invalidation straight to a server's /pubsub/invalidate endpoint instead of Pub/Sub")
	flag.Parse()

	log.Info("Starting match importer...")
	cfg := loadConfig()
	if *dbName != "" {
		cfg["DB_NAME"] = *dbName
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var (
		fetcher matchdata.Fetcher
		source  string
	)
	if *csvURL != "" {
		fetcher = matchdata.NewHTTPFetcher(*csvURL, time.Minute)
		source = *csvURL
	} else {
		fetcher = matchdata.NewFileFetcher(*csvPath)
		source = *csvPath
	}

	matches, err := matchdata.NewCSVLoader(fetcher).LoadMatches(ctx)
	if err != nil {
		log.Fatalf("Failed to load matches from %s: %s", source, err)
	}
	log.Info("Parsed match export", "source", source, "matches", len(matches))

	db, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer db.Close()

	startTime := time.Now()
	run, err := archive.New(db).ReplaceAll(ctx, source, matches)
	if err != nil {
		log.Fatalf("Failed to import matches: %s", err)
	}
	log.Info("Successfully imported matches", "run_id", run.ID, "records", run.Records, "duration", time.Since(startTime))

	if !*notify {
		return
	}
	event := pubsub.NewInvalidationEvent(cfg["INSTANCE_ID"], "import "+run.ID)

	if *pushURL != "" {
		if err := pushInvalidation(ctx, *pushURL, event); err != nil {
			log.Error("Failed to push invalidation event", "error", err, "url", *pushURL)
			return
		}
		log.Info("Pushed cache invalidation", "event_id", event.ID, "url", *pushURL)
		return
	}

	client := pubsub.New(cfg["GCP_PROJECT"])
	defer client.Close()

	if err := client.SendMessage(ctx, cfg["INVALIDATION_TOPIC"], event); err != nil {
		log.Error("Failed to publish invalidation event", "error", err)
		return
	}
	log.Info("Published cache invalidation", "event_id", event.ID)
}

// pushInvalidation posts event to url wrapped in a push subscription envelope.
func pushInvalidation(ctx context.Context, url string, event pubsub.InvalidationEvent) error {
	data, err := msgpack.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	body, err := pubsub.EncodePush("seeder", data)
	if err != nil {
		return fmt.Errorf("failed to wrap event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to push event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push endpoint returned %d", resp.StatusCode)
	}
	return nil
}
