package postgres

import (
	"context"
	"database/sql"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/apperr"
	"github.com/ghuser/wardrobe/pkg/database"
	"github.com/ghuser/wardrobe/services/outfit/domain/models"
	"github.com/ghuser/wardrobe/services/outfit/infrastructure/persistence/postgres/db"
)

// OutfitRepository implements repositories.OutfitRepository against PostgreSQL.
// Sets are stored as rows of outfit_items; dates travel as YYYY-MM-DD text.
type OutfitRepository struct {
	db *database.Database
}

func NewOutfitRepository(database *database.Database) *OutfitRepository {
	return &OutfitRepository{db: database}
}

// Merge upserts the record, which locks its row, then inserts each id,
// ignoring ids already present. Both happen in one transaction.
func (r *OutfitRepository) Merge(ctx context.Context, ownerID uuid.UUID, date civil.Date, ids []int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		outfitID, err := q.UpsertOutfit(ctx, ownerID, date.String())
		if err != nil {
			return apperr.Storage("upsert outfit", err)
		}
		for _, id := range ids {
			if err := q.InsertOutfitItem(ctx, outfitID, id); err != nil {
				return apperr.Storage("insert outfit item", err)
			}
		}
		return nil
	})
}

func (r *OutfitRepository) Clear(ctx context.Context, ownerID uuid.UUID, date civil.Date) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		outfitID, err := q.UpsertOutfit(ctx, ownerID, date.String())
		if err != nil {
			return apperr.Storage("upsert outfit", err)
		}
		if err := q.DeleteOutfitItems(ctx, outfitID); err != nil {
			return apperr.Storage("clear outfit items", err)
		}
		return nil
	})
}

func (r *OutfitRepository) Get(ctx context.Context, ownerID uuid.UUID, date civil.Date) ([]int64, error) {
	ids, err := db.New(r.db.DB()).GetOutfitItems(ctx, ownerID, date.String())
	if err != nil {
		return nil, apperr.Storage("get outfit", err)
	}
	return ids, nil
}

func (r *OutfitRepository) Range(ctx context.Context, ownerID uuid.UUID, start, end civil.Date) ([]models.Outfit, error) {
	rows, err := db.New(r.db.DB()).ListOutfitsInRange(ctx, ownerID, start.String(), end.String())
	if err != nil {
		return nil, apperr.Storage("list outfits in range", err)
	}
	return group(ownerID, rows), nil
}

func (r *OutfitRepository) Before(ctx context.Context, ownerID uuid.UUID, asOf civil.Date) ([]models.Outfit, error) {
	rows, err := db.New(r.db.DB()).ListOutfitsBefore(ctx, ownerID, asOf.String())
	if err != nil {
		return nil, apperr.Storage("list past outfits", err)
	}
	return group(ownerID, rows), nil
}

func (r *OutfitRepository) Containing(ctx context.Context, ownerID uuid.UUID, itemID int64) ([]models.Outfit, error) {
	rows, err := db.New(r.db.DB()).ListOutfitsContaining(ctx, ownerID, itemID)
	if err != nil {
		return nil, apperr.Storage("list outfits containing item", err)
	}
	return group(ownerID, rows), nil
}

// group folds consecutive rows of one date into an Outfit, keeping row order.
func group(ownerID uuid.UUID, rows []db.OutfitItemRow) []models.Outfit {
	out := []models.Outfit{}
	for _, row := range rows {
		d := civil.DateOf(row.OutfitDate)
		if len(out) == 0 || out[len(out)-1].Date != d {
			out = append(out, models.Outfit{OwnerID: ownerID, Date: d, ItemIDs: []int64{}})
		}
		if row.ClothingID.Valid {
			last := &out[len(out)-1]
			last.ItemIDs = append(last.ItemIDs, row.ClothingID.Int64)
		}
	}
	return out
}
