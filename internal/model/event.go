// internal/model/event.go
package model

import (
	"encoding/json"
	"time"
)

// Event is a domain event published after a successful mutation.
type Event struct {
	ID         string          `db:"event_id" json:"event_id"`
	Topic      string          `db:"topic" json:"topic"`
	Payload    json.RawMessage `db:"payload" json:"payload"`
	OccurredAt time.Time       `db:"occurred_at" json:"occurred_at"`
}
