package stream

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Record wraps a typed event payload in an Event envelope and publishes it.
// A nil publisher is a no-op so domains can run without a stream attached.
func Record(ctx context.Context, pub Publisher, sessionID, eventType string, data any) error {
	if pub == nil {
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	event := Event{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		EventType: eventType,
		Data:      jsonData,
		Timestamp: time.Now(),
	}

	return pub.Publish(ctx, sessionID, event)
}
