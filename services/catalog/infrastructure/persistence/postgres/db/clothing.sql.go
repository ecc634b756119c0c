package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const clothingColumns = `id, owner_id, category, color, material, sub_type, display_name, created_at`

const insertClothing = `
INSERT INTO clothing (owner_id, category, color, material, sub_type, display_name, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`

type InsertClothingParams struct {
	OwnerID     uuid.UUID
	Category    string
	Color       string
	Material    sql.NullString
	SubType     sql.NullString
	DisplayName sql.NullString
	CreatedAt   time.Time
}

func (q *Queries) InsertClothing(ctx context.Context, arg InsertClothingParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, insertClothing,
		arg.OwnerID, arg.Category, arg.Color, arg.Material, arg.SubType, arg.DisplayName, arg.CreatedAt)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const updateClothing = `
UPDATE clothing
SET category = $3, color = $4, material = $5, sub_type = $6, display_name = $7
WHERE id = $1 AND owner_id = $2
`

type UpdateClothingParams struct {
	ID          int64
	OwnerID     uuid.UUID
	Category    string
	Color       string
	Material    sql.NullString
	SubType     sql.NullString
	DisplayName sql.NullString
}

func (q *Queries) UpdateClothing(ctx context.Context, arg UpdateClothingParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateClothing,
		arg.ID, arg.OwnerID, arg.Category, arg.Color, arg.Material, arg.SubType, arg.DisplayName)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteClothing = `
DELETE FROM clothing WHERE id = $1 AND owner_id = $2
`

func (q *Queries) DeleteClothing(ctx context.Context, id int64, ownerID uuid.UUID) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteClothing, id, ownerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const getClothing = `
SELECT ` + clothingColumns + ` FROM clothing
WHERE id = $1 AND owner_id = $2
`

func (q *Queries) GetClothing(ctx context.Context, id int64, ownerID uuid.UUID) (Clothing, error) {
	row := q.db.QueryRowContext(ctx, getClothing, id, ownerID)
	var i Clothing
	err := row.Scan(&i.ID, &i.OwnerID, &i.Category, &i.Color, &i.Material, &i.SubType, &i.DisplayName, &i.CreatedAt)
	return i, err
}

const listClothing = `
SELECT ` + clothingColumns + ` FROM clothing
WHERE owner_id = $1
  AND ($2 = '' OR category = $2)
  AND ($3 = '' OR color = $3)
  AND ($4 = '' OR material = $4)
ORDER BY id DESC
`

type ListClothingParams struct {
	OwnerID  uuid.UUID
	Category string
	Color    string
	Material string
}

func (q *Queries) ListClothing(ctx context.Context, arg ListClothingParams) ([]Clothing, error) {
	return q.queryClothing(ctx, listClothing, arg.OwnerID, arg.Category, arg.Color, arg.Material)
}

const listClothingByIDs = `
SELECT ` + clothingColumns + ` FROM clothing
WHERE owner_id = $1 AND id = ANY($2::bigint[])
ORDER BY id
`

func (q *Queries) ListClothingByIDs(ctx context.Context, ownerID uuid.UUID, ids []int64) ([]Clothing, error) {
	return q.queryClothing(ctx, listClothingByIDs, ownerID, ids)
}

const insertSeason = `
INSERT INTO clothing_seasons (clothing_id, season) VALUES ($1, $2)
ON CONFLICT DO NOTHING
`

func (q *Queries) InsertSeason(ctx context.Context, clothingID int64, season string) error {
	_, err := q.db.ExecContext(ctx, insertSeason, clothingID, season)
	return err
}

const insertOccasion = `
INSERT INTO clothing_occasions (clothing_id, occasion) VALUES ($1, $2)
ON CONFLICT DO NOTHING
`

func (q *Queries) InsertOccasion(ctx context.Context, clothingID int64, occasion string) error {
	_, err := q.db.ExecContext(ctx, insertOccasion, clothingID, occasion)
	return err
}

const deleteSeasons = `DELETE FROM clothing_seasons WHERE clothing_id = $1`

func (q *Queries) DeleteSeasons(ctx context.Context, clothingID int64) error {
	_, err := q.db.ExecContext(ctx, deleteSeasons, clothingID)
	return err
}

const deleteOccasions = `DELETE FROM clothing_occasions WHERE clothing_id = $1`

func (q *Queries) DeleteOccasions(ctx context.Context, clothingID int64) error {
	_, err := q.db.ExecContext(ctx, deleteOccasions, clothingID)
	return err
}

const listSeasons = `
SELECT clothing_id, season FROM clothing_seasons
WHERE clothing_id = ANY($1::bigint[])
ORDER BY clothing_id
`

func (q *Queries) ListSeasons(ctx context.Context, ids []int64) ([]ClothingValue, error) {
	return q.queryValues(ctx, listSeasons, ids)
}

const listOccasions = `
SELECT clothing_id, occasion FROM clothing_occasions
WHERE clothing_id = ANY($1::bigint[])
ORDER BY clothing_id, occasion COLLATE "C"
`

func (q *Queries) ListOccasions(ctx context.Context, ids []int64) ([]ClothingValue, error) {
	return q.queryValues(ctx, listOccasions, ids)
}

func (q *Queries) queryClothing(ctx context.Context, query string, args ...interface{}) ([]Clothing, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Clothing
	for rows.Next() {
		var i Clothing
		if err := rows.Scan(&i.ID, &i.OwnerID, &i.Category, &i.Color, &i.Material, &i.SubType, &i.DisplayName, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (q *Queries) queryValues(ctx context.Context, query string, ids []int64) ([]ClothingValue, error) {
	rows, err := q.db.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ClothingValue
	for rows.Next() {
		var i ClothingValue
		if err := rows.Scan(&i.ClothingID, &i.Value); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
