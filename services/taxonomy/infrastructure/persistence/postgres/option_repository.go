package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/apperr"
	"github.com/ghuser/wardrobe/pkg/database"
	taxonomydomain "github.com/ghuser/wardrobe/services/taxonomy/domain"
	"github.com/ghuser/wardrobe/services/taxonomy/domain/models"
	"github.com/ghuser/wardrobe/services/taxonomy/infrastructure/persistence/postgres/db"
)

// OptionRepository implements repositories.OptionRepository against PostgreSQL.
type OptionRepository struct {
	db *database.Database
}

func NewOptionRepository(database *database.Database) *OptionRepository {
	return &OptionRepository{db: database}
}

func (r *OptionRepository) List(ctx context.Context, ownerID uuid.UUID, key models.CategoryKey) ([]string, error) {
	values, err := db.New(r.db.DB()).ListOptions(ctx, ownerID, key.String())
	if err != nil {
		return nil, apperr.Storage("list options", err)
	}
	return values, nil
}

// Add inserts a value. A concurrent duplicate surfaces as the unique violation
// and maps to ErrOptionAlreadyExists like a sequential one.
func (r *OptionRepository) Add(ctx context.Context, ownerID uuid.UUID, key models.CategoryKey, value string) error {
	err := db.New(r.db.DB()).InsertOption(ctx, db.InsertOptionParams{
		OwnerID:     ownerID,
		CategoryKey: key.String(),
		Value:       value,
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return taxonomydomain.ErrOptionAlreadyExists
		}
		return apperr.Storage("insert option", err)
	}
	return nil
}

func (r *OptionRepository) Remove(ctx context.Context, ownerID uuid.UUID, key models.CategoryKey, value string) error {
	err := db.New(r.db.DB()).DeleteOption(ctx, db.InsertOptionParams{
		OwnerID:     ownerID,
		CategoryKey: key.String(),
		Value:       value,
	})
	if err != nil {
		return apperr.Storage("delete option", err)
	}
	return nil
}

func (r *OptionRepository) AddMissing(ctx context.Context, ownerID uuid.UUID, options []models.Option) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		for _, o := range options {
			if err := q.InsertOptionIfMissing(ctx, db.InsertOptionParams{
				OwnerID:     ownerID,
				CategoryKey: o.Key.String(),
				Value:       o.Value,
			}); err != nil {
				return apperr.Storage("seed options", err)
			}
		}
		return nil
	})
}
