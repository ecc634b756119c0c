package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/apperr"
	"github.com/ghuser/wardrobe/pkg/database"
	taxonomydomain "github.com/ghuser/wardrobe/services/taxonomy/domain"
	"github.com/ghuser/wardrobe/services/taxonomy/infrastructure/persistence/postgres/db"
)

// LocationRepository implements repositories.LocationRepository against PostgreSQL.
type LocationRepository struct {
	db *database.Database
}

func NewLocationRepository(database *database.Database) *LocationRepository {
	return &LocationRepository{db: database}
}

func (r *LocationRepository) List(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	cities, err := db.New(r.db.DB()).ListLocations(ctx, ownerID)
	if err != nil {
		return nil, apperr.Storage("list locations", err)
	}
	return cities, nil
}

func (r *LocationRepository) Add(ctx context.Context, ownerID uuid.UUID, city string) error {
	if err := db.New(r.db.DB()).InsertLocation(ctx, ownerID, city); err != nil {
		if database.IsUniqueViolation(err) {
			return taxonomydomain.ErrLocationAlreadyExists
		}
		return apperr.Storage("insert location", err)
	}
	return nil
}

func (r *LocationRepository) Remove(ctx context.Context, ownerID uuid.UUID, city string) error {
	if err := db.New(r.db.DB()).DeleteLocation(ctx, ownerID, city); err != nil {
		return apperr.Storage("delete location", err)
	}
	return nil
}

func (r *LocationRepository) AddMissing(ctx context.Context, ownerID uuid.UUID, cities []string) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		for _, c := range cities {
			if err := q.InsertLocationIfMissing(ctx, ownerID, c); err != nil {
				return apperr.Storage("seed locations", err)
			}
		}
		return nil
	})
}
