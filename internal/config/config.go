package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

var (
	ErrMissingSource = errors.New("data source is not configured")
	ErrUnknownSource = errors.New("unknown data source")
	ErrBadTemplate   = errors.New("invalid player image template")
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	cfg, err := FromEnv(os.LookupEnv)
	if err != nil {
		log.Fatalf("Invalid configuration: %s", err)
	}
	return cfg
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	getEnv := func(key, fallback string) string {
		if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
		return fallback
	}

	timeout, err := time.ParseDuration(getEnv("DATA_FETCH_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DATA_FETCH_TIMEOUT: %w", err)
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME", "ace-tracker.db"),
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		ImageTemplate: getEnv("PLAYER_IMAGE_TEMPLATE", "/images/players/%s.jpg"),
		Data: DataConfig{
			Source:       SourceKind(strings.ToLower(getEnv("DATA_SOURCE", string(SourceFile)))),
			Path:         getEnv("DATA_PATH", "data/atp_matches_2024.csv"),
			URL:          getEnv("DATA_URL", ""),
			FetchTimeout: timeout,
		},
		Slack: SlackConfig{
			Token:         getEnv("SLACK_BOT_TOKEN", ""),
			ChannelID:     getEnv("SLACK_CHANNEL_ID", ""),
			SigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnv("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnv("TURSO_AUTH_TOKEN", ""),
		},
		ProjectID:         getEnv("GCP_PROJECT", ""),
		InvalidationTopic: getEnv("INVALIDATION_TOPIC", "cache-invalidated"),
		InstanceID:        getEnv("INSTANCE_ID", uuid.NewString()),
	}

	if !validImageTemplate(cfg.ImageTemplate) {
		return Config{}, fmt.Errorf("%w: PLAYER_IMAGE_TEMPLATE %q must contain exactly one %%s", ErrBadTemplate, cfg.ImageTemplate)
	}

	switch cfg.Data.Source {
	case SourceFile:
		if cfg.Data.Path == "" {
			return Config{}, fmt.Errorf("%w: DATA_PATH is empty", ErrMissingSource)
		}
	case SourceHTTP:
		if cfg.Data.URL == "" {
			return Config{}, fmt.Errorf("%w: DATA_URL is required when DATA_SOURCE=http", ErrMissingSource)
		}
	case SourceDatabase:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Data.Source)
	}

	return cfg, nil
}

// validImageTemplate reports whether tmpl has exactly one %s and no other
// verbs. Literal %% is allowed.
func validImageTemplate(tmpl string) bool {
	rest := strings.ReplaceAll(tmpl, "%%", "")
	if strings.Count(rest, "%s") != 1 {
		return false
	}
	return !strings.Contains(strings.Replace(rest, "%s", "", 1), "%")
}

// PubSubEnabled reports whether cross-instance invalidation is configured.
func (c Config) PubSubEnabled() bool {
	return c.ProjectID != ""
}
