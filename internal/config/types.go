package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName            string
	Port              string
	LogLevel          string
	ImageTemplate     string
	Data              DataConfig
	Slack             SlackConfig
	Turso             TursoConfig
	ProjectID         string
	InvalidationTopic string
	InstanceID        string
}

// DataConfig describes where the season match export is read from.
type DataConfig struct {
	Source       SourceKind
	Path         string
	URL          string
	FetchTimeout time.Duration
}

type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// SourceKind selects the loader used to read raw matches.
type SourceKind string

const (
	SourceFile     SourceKind = "file"
	SourceHTTP     SourceKind = "http"
	SourceDatabase SourceKind = "database"
)
