package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// New connects to Pub/Sub in projectID. An empty projectID returns a client
// that drops every message.
func New(projectID string) PubSubClient {
	if projectID == "" {
		log.Info("No GCP project configured, cache invalidations stay local")
		return noopClient{}
	}

	ctx := context.Background()
	pubSubC, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	teardown := func() {
		pubSubC.Close()
	}

	return &client{
		client:   pubSubC,
		teardown: teardown,
	}
}

func (c *client) SendMessage(ctx context.Context, topic string, data any) error {
	msgpackData, err := msgpack.Marshal(data)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		return err
	}
	message := &pubsub.Message{
		Data: msgpackData,
	}
	result := c.client.Topic(topic).Publish(ctx, message)
	serverID, err := result.Get(ctx)
	if err != nil {
		log.Error("Failed to publish message", "error", err, "topic", topic)
		return err
	}
	log.Info("SendMessage", "serverID", serverID, "topic", topic)
	return nil
}

func (c *client) ProcessMessage(data []byte, returnValue any) error {
	return processMessage(data, returnValue)
}

func (c *client) Close() error {
	c.teardown()
	return nil
}

func (noopClient) SendMessage(ctx context.Context, topic string, data any) error {
	log.Debug("Pub/Sub disabled, dropping message", "topic", topic)
	return nil
}

func (noopClient) ProcessMessage(data []byte, returnValue any) error {
	return processMessage(data, returnValue)
}

func (noopClient) Close() error { return nil }

func processMessage(data []byte, returnValue any) error {
	// Unmarshal the MessagePack data into the provided pointer struct
	if err := msgpack.Unmarshal(data, returnValue); err != nil {
		log.Error("MessagePack unmarshal error", "error", err)
		return err
	}
	return nil
}

// NewInvalidationEvent stamps a new event from origin.
func NewInvalidationEvent(origin, reason string) InvalidationEvent {
	return InvalidationEvent{
		ID:     uuid.NewString(),
		Type:   EventInvalidateCache,
		Origin: origin,
		Reason: reason,
		At:     time.Now().UTC(),
	}
}

// DecodePush extracts the raw message payload from a push request body.
func DecodePush(body []byte) ([]byte, error) {
	var req PushRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("invalid push envelope: %w", err)
	}
	data, err := base64.StdEncoding.DecodeString(req.Message.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 data: %w", err)
	}
	return data, nil
}

// EncodePush wraps a payload the way a push subscription delivers it.
func EncodePush(subscription string, data []byte) ([]byte, error) {
	var req PushRequest
	req.Subscription = subscription
	req.Message.Data = base64.StdEncoding.EncodeToString(data)
	req.Message.MessageID = uuid.NewString()
	return json.Marshal(req)
}
