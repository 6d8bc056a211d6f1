package pubsub

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/charmbracelet/log"
	"github.com/mauv0809/neural-dilemma/internal/metrics"
	"github.com/vmihailenco/msgpack/v5"
)

// New connects to Google Cloud Pub/Sub for projectID and makes sure every
// topic exists.
func New(ctx context.Context, projectID string, metrics metrics.Metrics) (Publisher, error) {
	pubSubC, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	c := newWithClient(pubSubC, metrics)
	if err := c.EnsureTopics(ctx); err != nil {
		pubSubC.Close()
		return nil, err
	}
	return c, nil
}

func newWithClient(c *pubsub.Client, metrics metrics.Metrics) *client {
	return &client{
		client:  c,
		metrics: metrics,
	}
}

// EnsureTopics creates any of Topics that does not exist yet.
func (c *client) EnsureTopics(ctx context.Context) error {
	for _, topic := range Topics {
		exists, err := c.client.Topic(string(topic)).Exists(ctx)
		if err != nil {
			return fmt.Errorf("failed to check topic %s: %w", topic, err)
		}
		if exists {
			continue
		}
		if _, err := c.client.CreateTopic(ctx, string(topic)); err != nil {
			return fmt.Errorf("failed to create topic %s: %w", topic, err)
		}
		log.Info("Created topic", "topic", topic)
	}
	return nil
}

func (c *client) SendMessage(topic EventType, data any) error {
	ctx := context.Background()
	msgpackData, err := msgpack.Marshal(data)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		c.metrics.IncEventsFailed()
		return err
	}
	message := &pubsub.Message{
		Data:       msgpackData,
		Attributes: map[string]string{"event": string(topic)},
	}
	result := c.client.Topic(string(topic)).Publish(ctx, message)
	serverID, err := result.Get(ctx)
	if err != nil {
		log.Error("Failed to publish message", "error", err, "topic", topic)
		c.metrics.IncEventsFailed()
		return err
	}
	c.metrics.IncEventsPublished()
	log.Info("SendMessage", "serverID", serverID, "topic", topic)
	return nil
}

func (c *client) Close() error {
	return c.client.Close()
}

// NewDisabled returns a Publisher that logs and drops every event. It is used
// when no Pub/Sub project is configured.
func NewDisabled() Publisher {
	return disabled{}
}

func (disabled) SendMessage(topic EventType, data any) error {
	log.Debug("Pub/Sub disabled, dropping event", "topic", topic)
	return nil
}

func (disabled) Close() error {
	return nil
}
