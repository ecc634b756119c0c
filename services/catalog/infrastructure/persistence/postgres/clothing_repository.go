package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/apperr"
	"github.com/ghuser/wardrobe/pkg/database"
	"github.com/ghuser/wardrobe/pkg/events"
	catalogdomain "github.com/ghuser/wardrobe/services/catalog/domain"
	domainevents "github.com/ghuser/wardrobe/services/catalog/domain/events"
	"github.com/ghuser/wardrobe/services/catalog/domain/models"
	"github.com/ghuser/wardrobe/services/catalog/infrastructure/persistence/postgres/db"
)

// ClothingRepository implements repositories.ClothingRepository against PostgreSQL.
// Seasons and occasions live in junction tables and are loaded in one extra
// query each per call.
type ClothingRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewClothingRepository returns a repository that also writes clothing events
// to the outbox when bus is non-nil.
func NewClothingRepository(database *database.Database, bus *events.EventBus) *ClothingRepository {
	return &ClothingRepository{db: database, bus: bus}
}

// Insert stores item with its sets and publishes ClothingCreatedEvent in the
// same transaction.
func (r *ClothingRepository) Insert(ctx context.Context, item *models.ClothingItem) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		id, err := q.InsertClothing(ctx, db.InsertClothingParams{
			OwnerID:     item.OwnerID,
			Category:    string(item.Category),
			Color:       item.Color,
			Material:    nullable(item.Material),
			SubType:     nullable(item.SubType),
			DisplayName: nullable(item.DisplayName),
			CreatedAt:   item.CreatedAt,
		})
		if err != nil {
			return apperr.Storage("insert clothing", err)
		}
		if err := writeSets(ctx, q, id, item); err != nil {
			return err
		}
		item.ID = id

		if r.bus == nil {
			return nil
		}
		msg, err := events.NewMessage(uuid.New(), 1, domainevents.ClothingCreatedEvent{
			EventID:    uuid.New(),
			Version:    1,
			ClothingID: id,
			OwnerID:    item.OwnerID,
			Category:   string(item.Category),
			OccurredAt: item.CreatedAt,
		})
		if err != nil {
			return err
		}
		if err := r.bus.PublishInTx(ctx, tx, domainevents.TopicClothingCreated, msg); err != nil {
			return fmt.Errorf("publish clothing created: %w", err)
		}
		return nil
	})
}

func (r *ClothingRepository) List(ctx context.Context, ownerID uuid.UUID, filter models.Filter) ([]*models.ClothingItem, error) {
	q := db.New(r.db.DB())
	rows, err := q.ListClothing(ctx, db.ListClothingParams{
		OwnerID:  ownerID,
		Category: filter.Category,
		Color:    filter.Color,
		Material: filter.Material,
	})
	if err != nil {
		return nil, apperr.Storage("list clothing", err)
	}
	return hydrate(ctx, q, rows)
}

func (r *ClothingRepository) GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (*models.ClothingItem, error) {
	q := db.New(r.db.DB())
	row, err := q.GetClothing(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrClothingNotFound
		}
		return nil, apperr.Storage("get clothing", err)
	}
	items, err := hydrate(ctx, q, []db.Clothing{row})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

func (r *ClothingRepository) GetMany(ctx context.Context, ownerID uuid.UUID, ids []int64) ([]*models.ClothingItem, error) {
	if len(ids) == 0 {
		return []*models.ClothingItem{}, nil
	}
	q := db.New(r.db.DB())
	rows, err := q.ListClothingByIDs(ctx, ownerID, ids)
	if err != nil {
		return nil, apperr.Storage("get clothing by ids", err)
	}
	return hydrate(ctx, q, rows)
}

// Update replaces the row and both sets in one transaction.
func (r *ClothingRepository) Update(ctx context.Context, item *models.ClothingItem) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		n, err := q.UpdateClothing(ctx, db.UpdateClothingParams{
			ID:          item.ID,
			OwnerID:     item.OwnerID,
			Category:    string(item.Category),
			Color:       item.Color,
			Material:    nullable(item.Material),
			SubType:     nullable(item.SubType),
			DisplayName: nullable(item.DisplayName),
		})
		if err != nil {
			return apperr.Storage("update clothing", err)
		}
		if n == 0 {
			return catalogdomain.ErrClothingNotFound
		}
		if err := q.DeleteSeasons(ctx, item.ID); err != nil {
			return apperr.Storage("clear seasons", err)
		}
		if err := q.DeleteOccasions(ctx, item.ID); err != nil {
			return apperr.Storage("clear occasions", err)
		}
		return writeSets(ctx, q, item.ID, item)
	})
}

// Delete removes the row and publishes ClothingDeletedEvent. Outfit records
// referencing the id are left untouched.
func (r *ClothingRepository) Delete(ctx context.Context, ownerID uuid.UUID, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).DeleteClothing(ctx, id, ownerID)
		if err != nil {
			return apperr.Storage("delete clothing", err)
		}
		if n == 0 {
			return catalogdomain.ErrClothingNotFound
		}

		if r.bus == nil {
			return nil
		}
		msg, err := events.NewMessage(uuid.New(), 1, domainevents.ClothingDeletedEvent{
			EventID:    uuid.New(),
			Version:    1,
			ClothingID: id,
			OwnerID:    ownerID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		if err := r.bus.PublishInTx(ctx, tx, domainevents.TopicClothingDeleted, msg); err != nil {
			return fmt.Errorf("publish clothing deleted: %w", err)
		}
		return nil
	})
}

func writeSets(ctx context.Context, q *db.Queries, id int64, item *models.ClothingItem) error {
	for _, s := range item.Seasons {
		if err := q.InsertSeason(ctx, id, string(s)); err != nil {
			return apperr.Storage("insert season", err)
		}
	}
	for _, o := range item.Occasions {
		if err := q.InsertOccasion(ctx, id, o); err != nil {
			return apperr.Storage("insert occasion", err)
		}
	}
	return nil
}

// hydrate maps rows to models and attaches their seasons and occasions,
// keeping the row order.
func hydrate(ctx context.Context, q *db.Queries, rows []db.Clothing) ([]*models.ClothingItem, error) {
	items := make([]*models.ClothingItem, len(rows))
	if len(rows) == 0 {
		return items, nil
	}
	ids := make([]int64, len(rows))
	byID := make(map[int64]*models.ClothingItem, len(rows))
	for i, row := range rows {
		items[i] = rowToClothing(row)
		ids[i] = row.ID
		byID[row.ID] = items[i]
	}

	seasons, err := q.ListSeasons(ctx, ids)
	if err != nil {
		return nil, apperr.Storage("list seasons", err)
	}
	have := make(map[int64]map[models.Season]bool, len(rows))
	for _, v := range seasons {
		if have[v.ClothingID] == nil {
			have[v.ClothingID] = make(map[models.Season]bool)
		}
		have[v.ClothingID][models.Season(v.Value)] = true
	}
	for id, item := range byID {
		for _, s := range models.Seasons {
			if have[id][s] {
				item.Seasons = append(item.Seasons, s)
			}
		}
	}

	occasions, err := q.ListOccasions(ctx, ids)
	if err != nil {
		return nil, apperr.Storage("list occasions", err)
	}
	for _, v := range occasions {
		if item, ok := byID[v.ClothingID]; ok {
			item.Occasions = append(item.Occasions, v.Value)
		}
	}
	return items, nil
}

func rowToClothing(row db.Clothing) *models.ClothingItem {
	return &models.ClothingItem{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Category:    models.Category(row.Category),
		Color:       row.Color,
		Material:    row.Material.String,
		SubType:     row.SubType.String,
		DisplayName: row.DisplayName.String,
		Occasions:   []string{},
		CreatedAt:   row.CreatedAt,
	}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
