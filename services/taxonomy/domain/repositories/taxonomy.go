package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/services/taxonomy/domain/models"
)

// OptionRepository persists per-owner taxonomy values.
// The domain layer owns this interface; infrastructure implements it.
type OptionRepository interface {
	// List returns the values under key in lexicographic order.
	List(ctx context.Context, ownerID uuid.UUID, key models.CategoryKey) ([]string, error)

	// Add inserts one value. Returns ErrOptionAlreadyExists on a duplicate.
	Add(ctx context.Context, ownerID uuid.UUID, key models.CategoryKey, value string) error

	// Remove deletes one value; a missing value is not an error.
	Remove(ctx context.Context, ownerID uuid.UUID, key models.CategoryKey, value string) error

	// AddMissing inserts every option that is not already present.
	AddMissing(ctx context.Context, ownerID uuid.UUID, options []models.Option) error
}

// LocationRepository persists per-owner weather cities.
type LocationRepository interface {
	// List returns city names in insertion order.
	List(ctx context.Context, ownerID uuid.UUID) ([]string, error)
	Add(ctx context.Context, ownerID uuid.UUID, city string) error
	Remove(ctx context.Context, ownerID uuid.UUID, city string) error
	AddMissing(ctx context.Context, ownerID uuid.UUID, cities []string) error
}
