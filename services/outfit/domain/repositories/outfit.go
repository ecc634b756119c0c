package repositories

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/services/outfit/domain/models"
)

// OutfitRepository is the date-indexed outfit ledger. Every method is scoped
// to one owner; ItemIDs in returned outfits are ascending.
type OutfitRepository interface {
	// Merge unions ids into the record for date, creating it when absent.
	// Concurrent merges on the same record must not lose ids.
	Merge(ctx context.Context, ownerID uuid.UUID, date civil.Date, ids []int64) error

	// Clear empties the record for date, creating an empty one when absent.
	Clear(ctx context.Context, ownerID uuid.UUID, date civil.Date) error

	// Get returns the ids for date, empty when there is no record.
	Get(ctx context.Context, ownerID uuid.UUID, date civil.Date) ([]int64, error)

	// Range returns existing records with start <= date <= end, date ascending.
	Range(ctx context.Context, ownerID uuid.UUID, start, end civil.Date) ([]models.Outfit, error)

	// Before returns records dated strictly before asOf, date descending.
	Before(ctx context.Context, ownerID uuid.UUID, asOf civil.Date) ([]models.Outfit, error)

	// Containing returns records whose set includes itemID, date descending.
	Containing(ctx context.Context, ownerID uuid.UUID, itemID int64) ([]models.Outfit, error)
}
