// Package subscribers holds the worker-side handlers for catalog events.
package subscribers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/events"
	"github.com/ghuser/wardrobe/pkg/logger"
	domainevents "github.com/ghuser/wardrobe/services/catalog/domain/events"
)

// CacheMaintainer is the slice of ClothingService the handlers need.
type CacheMaintainer interface {
	WarmCache(ctx context.Context, ownerID uuid.UUID, id int64) error
	EvictCache(ctx context.Context, ownerID uuid.UUID, id int64) error
}

// Register subscribes the catalog handlers and drains their error channels.
func Register(ctx context.Context, bus *events.EventBus, svc CacheMaintainer, log logger.Logger) error {
	handlers := map[string]func(context.Context, *message.Message) error{
		domainevents.TopicClothingCreated: HandleClothingCreated(svc, log),
		domainevents.TopicClothingDeleted: HandleClothingDeleted(svc, log),
	}
	for topic, h := range handlers {
		errCh, err := bus.Subscribe(ctx, topic, h)
		if err != nil {
			return err
		}
		go func(topic string) {
			for err := range errCh {
				log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}
	log.Info("catalog subscribers registered",
		"topics", []string{domainevents.TopicClothingCreated, domainevents.TopicClothingDeleted})
	return nil
}

// HandleClothingCreated warms the Redis read model. Handlers must be
// idempotent; the bus retries failures.
func HandleClothingCreated(svc CacheMaintainer, log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.Decode[domainevents.ClothingCreatedEvent](msg)
		if err != nil {
			// A payload that never decodes would be retried forever.
			log.ErrorContext(ctx, "dropping malformed clothing.created", "message_id", msg.UUID, "error", err)
			return nil
		}
		if err := svc.WarmCache(ctx, evt.OwnerID, evt.ClothingID); err != nil {
			// Best-effort: a cold cache only costs a Postgres read.
			log.WarnContext(ctx, "cache warm failed", "clothing_id", evt.ClothingID, "error", err)
			return nil
		}
		log.InfoContext(ctx, "cache warmed", "clothing_id", evt.ClothingID, "owner_id", evt.OwnerID)
		return nil
	}
}

// HandleClothingDeleted evicts the cached entry. Eviction errors are returned
// so the bus retries; a stale entry would keep serving a deleted item.
func HandleClothingDeleted(svc CacheMaintainer, log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.Decode[domainevents.ClothingDeletedEvent](msg)
		if err != nil {
			log.ErrorContext(ctx, "dropping malformed clothing.deleted", "message_id", msg.UUID, "error", err)
			return nil
		}
		return svc.EvictCache(ctx, evt.OwnerID, evt.ClothingID)
	}
}
