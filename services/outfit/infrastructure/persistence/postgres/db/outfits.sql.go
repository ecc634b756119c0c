package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// OutfitItemRow is one (date, clothing id) pair. ClothingID is NULL for a
// record with an empty set.
type OutfitItemRow struct {
	OutfitDate time.Time
	ClothingID sql.NullInt64
}

const upsertOutfit = `
INSERT INTO outfits (owner_id, outfit_date)
VALUES ($1, $2::date)
ON CONFLICT (owner_id, outfit_date) DO UPDATE SET updated_at = now()
RETURNING id
`

// UpsertOutfit returns the record id, creating the record if needed. The
// conflict path takes the row lock, so merges on one record serialize.
func (q *Queries) UpsertOutfit(ctx context.Context, ownerID uuid.UUID, date string) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, upsertOutfit, ownerID, date).Scan(&id)
	return id, err
}

const insertOutfitItem = `
INSERT INTO outfit_items (outfit_id, clothing_id) VALUES ($1, $2)
ON CONFLICT DO NOTHING
`

func (q *Queries) InsertOutfitItem(ctx context.Context, outfitID, clothingID int64) error {
	_, err := q.db.ExecContext(ctx, insertOutfitItem, outfitID, clothingID)
	return err
}

const deleteOutfitItems = `DELETE FROM outfit_items WHERE outfit_id = $1`

func (q *Queries) DeleteOutfitItems(ctx context.Context, outfitID int64) error {
	_, err := q.db.ExecContext(ctx, deleteOutfitItems, outfitID)
	return err
}

const getOutfitItems = `
SELECT oi.clothing_id
FROM outfits o
JOIN outfit_items oi ON oi.outfit_id = o.id
WHERE o.owner_id = $1 AND o.outfit_date = $2::date
ORDER BY oi.clothing_id
`

func (q *Queries) GetOutfitItems(ctx context.Context, ownerID uuid.UUID, date string) ([]int64, error) {
	rows, err := q.db.QueryContext(ctx, getOutfitItems, ownerID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

const listOutfitsInRange = `
SELECT o.outfit_date, oi.clothing_id
FROM outfits o
LEFT JOIN outfit_items oi ON oi.outfit_id = o.id
WHERE o.owner_id = $1 AND o.outfit_date BETWEEN $2::date AND $3::date
ORDER BY o.outfit_date, oi.clothing_id
`

func (q *Queries) ListOutfitsInRange(ctx context.Context, ownerID uuid.UUID, start, end string) ([]OutfitItemRow, error) {
	return q.queryOutfitRows(ctx, listOutfitsInRange, ownerID, start, end)
}

const listOutfitsBefore = `
SELECT o.outfit_date, oi.clothing_id
FROM outfits o
LEFT JOIN outfit_items oi ON oi.outfit_id = o.id
WHERE o.owner_id = $1 AND o.outfit_date < $2::date
ORDER BY o.outfit_date DESC, oi.clothing_id
`

func (q *Queries) ListOutfitsBefore(ctx context.Context, ownerID uuid.UUID, asOf string) ([]OutfitItemRow, error) {
	return q.queryOutfitRows(ctx, listOutfitsBefore, ownerID, asOf)
}

const listOutfitsContaining = `
SELECT o.outfit_date, oi.clothing_id
FROM outfits o
JOIN outfit_items oi ON oi.outfit_id = o.id
WHERE o.owner_id = $1
  AND o.id IN (SELECT outfit_id FROM outfit_items WHERE clothing_id = $2)
ORDER BY o.outfit_date DESC, oi.clothing_id
`

func (q *Queries) ListOutfitsContaining(ctx context.Context, ownerID uuid.UUID, clothingID int64) ([]OutfitItemRow, error) {
	return q.queryOutfitRows(ctx, listOutfitsContaining, ownerID, clothingID)
}

func (q *Queries) queryOutfitRows(ctx context.Context, query string, args ...interface{}) ([]OutfitItemRow, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OutfitItemRow
	for rows.Next() {
		var i OutfitItemRow
		if err := rows.Scan(&i.OutfitDate, &i.ClothingID); err != nil {
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
