// Package realtime fans out dashboard update events over Redis pub/sub.
// Dashboard sessions subscribe to their tenant's channel; mutations publish
// compact envelopes so open dashboards refresh without polling.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/tourbase/tourbase/pkg/logger"
	"github.com/tourbase/tourbase/pkg/redis"
)

// Envelope is one realtime message
type Envelope struct {
	Event      string      `json:"event"`
	EntityID   string      `json:"entity_id,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// Notifier publishes tenant-scoped realtime events. When no push app is
// configured the notifier is disabled and every call is a no-op.
type Notifier struct {
	rdb     *redis.Client
	appID   string
	enabled bool
	log     *logger.Logger
}

// Config holds push channel settings
type Config struct {
	AppID   string
	Key     string
	Secret  string
	Cluster string
}

// NewNotifier creates a Notifier. Passing an empty AppID disables it.
func NewNotifier(rdb *redis.Client, cfg Config, log *logger.Logger) *Notifier {
	return &Notifier{
		rdb:     rdb,
		appID:   cfg.AppID,
		enabled: cfg.AppID != "" && rdb != nil,
		log:     log.Named("realtime"),
	}
}

// Channel returns the pub/sub channel name for a tenant
func (n *Notifier) Channel(tenantID string) string {
	return fmt.Sprintf("%s:tenant:%s:events", n.appID, tenantID)
}

// NotifyTenant publishes an event to the tenant's channel
func (n *Notifier) NotifyTenant(ctx context.Context, tenantID, event, entityID string, data interface{}) error {
	if !n.enabled {
		return nil
	}

	payload, err := json.Marshal(Envelope{
		Event:      event,
		EntityID:   entityID,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal realtime envelope: %w", err)
	}

	return n.rdb.Publish(ctx, n.Channel(tenantID), payload).Err()
}

// Subscribe returns a subscription to the tenant's channel. The caller owns
// the subscription and must close it.
func (n *Notifier) Subscribe(ctx context.Context, tenantID string) *goredis.PubSub {
	return n.rdb.Subscribe(ctx, n.Channel(tenantID))
}
