package model

import (
	"encoding/json"
	"time"
)

// Plan represents a cached seating plan produced by an external generator.
// The Signature is the fingerprint of the snapshot the plan was computed
// from; a signature mismatch means the plan is stale.
type Plan struct {
	ID         int             `json:"id"`
	Signature  string          `json:"signature"`
	Payload    json.RawMessage `json:"payload"`
	GuestCount int             `json:"guest_count"`
	SeatCount  int             `json:"seat_count"`
	Metadata   Metadata        `json:"metadata,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
