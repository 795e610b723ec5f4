package stream

import (
	"context"
	"encoding/json"
	"time"
)

// Event is the envelope published for every storefront domain event.
type Event struct {
	ID        string          `json:"id"`
	SessionID string          `json:"session_id"`
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// Publisher publishes domain events keyed by session.
// A nil Publisher is valid everywhere and means "no stream configured".
type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
}
