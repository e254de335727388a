package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event defines the contract for background jobs put on the queue.
type Event interface {
	// EventType returns the unique code for this event (e.g., "RECORD_ANCHOR").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// wireEvent is how events travel over any queue transport.
type wireEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurredAt"`
}

// Envelope wraps an event for serialization.
func Envelope(e Event) interface{} {
	return wireEvent{
		Type:       e.EventType(),
		Data:       e.Payload(),
		OccurredAt: e.Timestamp(),
	}
}

// Decode is the inverse of json.Marshal(Envelope(e)).
func Decode(data []byte) (BaseEvent, error) {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return BaseEvent{}, fmt.Errorf("decode event: %w", err)
	}
	if w.Type == "" {
		return BaseEvent{}, fmt.Errorf("decode event: missing type")
	}
	return BaseEvent{Type: w.Type, Data: w.Data, OccurredAt: w.OccurredAt}, nil
}
