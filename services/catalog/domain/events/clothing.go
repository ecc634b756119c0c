package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	// TopicClothingCreated is published when a clothing item is added.
	TopicClothingCreated = "clothing.created"
	// TopicClothingDeleted is published when a clothing item is removed.
	TopicClothingDeleted = "clothing.deleted"
)

// ClothingCreatedEvent is written to the outbox in the insert transaction.
type ClothingCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ClothingID int64     `json:"clothing_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Category   string    `json:"category"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ClothingDeletedEvent is written to the outbox in the delete transaction.
type ClothingDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ClothingID int64     `json:"clothing_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
