package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a domain event published to the broker.
type EventType string

const (
	EventTransactionRecorded EventType = "wallet.transaction.recorded"
	EventClaimSubmitted      EventType = "claim.submitted"
	EventClaimDecided        EventType = "claim.decided"
)

// Event is the envelope written to Kafka after a successful commit.
type Event struct {
	ID         string    `json:"id"`         // Unique event identifier
	Type       EventType `json:"type"`       // Event type, also sent as a header
	Key        string    `json:"key"`        // Partition key (wallet owner or claim id)
	OccurredAt time.Time `json:"occurredAt"` // Commit time
	Payload    any       `json:"payload"`    // Wallet transaction or claim snapshot
}

// NewEvent stamps a new event.
func NewEvent(typ EventType, key string, payload any, now time.Time) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       typ,
		Key:        key,
		OccurredAt: now,
		Payload:    payload,
	}
}
