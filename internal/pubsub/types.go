package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

// noopClient is used when no GCP project is configured.
type noopClient struct{}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventInvalidateCache EventType = "invalidate-cache"
)

// InvalidationEvent asks every instance to drop its rankings cache.
type InvalidationEvent struct {
	ID     string    `msgpack:"id"`
	Type   EventType `msgpack:"type"`
	Origin string    `msgpack:"origin"`
	Reason string    `msgpack:"reason"`
	At     time.Time `msgpack:"at"`
}

// PushRequest is the JSON body Pub/Sub push subscriptions deliver.
type PushRequest struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data      string `json:"data"` // base64-encoded message payload
		MessageID string `json:"messageId"`
	} `json:"message"`
}
