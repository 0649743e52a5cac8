// Package events publishes domain events to Kafka/Redpanda. Publishing is
// best-effort supplementary signal for downstream consumers (analytics,
// search indexing); callers log failures but do not fail the request.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Topics for domain events
const (
	TopicTours  = "tourbase.tours"
	TopicEmails = "tourbase.emails"
)

// Event is one domain event envelope
type Event struct {
	Type       string      `json:"type"`
	TenantID   string      `json:"tenant_id"`
	EntityID   string      `json:"entity_id,omitempty"`
	Payload    interface{} `json:"payload,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// Publisher publishes domain events
type Publisher interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// KafkaPublisher implements Publisher on franz-go
type KafkaPublisher struct {
	client *kgo.Client
}

// NewKafkaPublisher creates a producer connected to the given brokers
func NewKafkaPublisher(brokers []string, clientID string) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ClientID(clientID),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka client: %w", err)
	}
	return &KafkaPublisher{client: client}, nil
}

// Publish produces one event, keyed by tenant so per-tenant ordering holds
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	record := &kgo.Record{
		Topic: topic,
		Key:   []byte(event.TenantID),
		Value: value,
	}
	return p.client.ProduceSync(ctx, record).FirstErr()
}

// Close flushes and shuts down the producer
func (p *KafkaPublisher) Close() {
	p.client.Close()
}

// NopPublisher discards events; used when no brokers are configured
type NopPublisher struct{}

// Publish discards the event
func (NopPublisher) Publish(ctx context.Context, topic string, event Event) error { return nil }

// Close is a no-op
func (NopPublisher) Close() {}
