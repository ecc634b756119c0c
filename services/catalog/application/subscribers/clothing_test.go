package subscribers

import (
	"context"
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/wardrobe/pkg/events"
	"github.com/ghuser/wardrobe/pkg/logger"
	domainevents "github.com/ghuser/wardrobe/services/catalog/domain/events"
)

type call struct {
	owner uuid.UUID
	id    int64
}

type fakeCache struct {
	warmed, evicted []call
	err             error
}

func (f *fakeCache) WarmCache(_ context.Context, owner uuid.UUID, id int64) error {
	f.warmed = append(f.warmed, call{owner, id})
	return f.err
}

func (f *fakeCache) EvictCache(_ context.Context, owner uuid.UUID, id int64) error {
	f.evicted = append(f.evicted, call{owner, id})
	return f.err
}

func TestHandleClothingCreated(t *testing.T) {
	owner := uuid.New()
	msg, err := events.NewMessage(uuid.New(), 1, domainevents.ClothingCreatedEvent{ClothingID: 7, OwnerID: owner})
	require.NoError(t, err)

	fc := &fakeCache{}
	require.NoError(t, HandleClothingCreated(fc, logger.Discard())(context.Background(), msg))
	assert.Equal(t, []call{{owner, 7}}, fc.warmed)

	fc.err = errors.New("redis down")
	assert.NoError(t, HandleClothingCreated(fc, logger.Discard())(context.Background(), msg))
}

func TestHandleClothingDeleted_ReturnsEvictError(t *testing.T) {
	owner := uuid.New()
	msg, err := events.NewMessage(uuid.New(), 1, domainevents.ClothingDeletedEvent{ClothingID: 9, OwnerID: owner})
	require.NoError(t, err)

	fc := &fakeCache{err: errors.New("redis down")}
	err = HandleClothingDeleted(fc, logger.Discard())(context.Background(), msg)
	assert.Error(t, err)
	assert.Equal(t, []call{{owner, 9}}, fc.evicted)
}

func TestHandlers_DropMalformedPayload(t *testing.T) {
	msg := message.NewMessage("m-1", []byte("{not json"))
	fc := &fakeCache{}

	assert.NoError(t, HandleClothingCreated(fc, logger.Discard())(context.Background(), msg))
	assert.NoError(t, HandleClothingDeleted(fc, logger.Discard())(context.Background(), msg))
	assert.Empty(t, fc.warmed)
	assert.Empty(t, fc.evicted)
}
