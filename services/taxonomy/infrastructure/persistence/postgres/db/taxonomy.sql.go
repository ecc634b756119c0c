package db

import (
	"context"

	"github.com/google/uuid"
)

const listOptions = `
SELECT value FROM taxonomy_options
WHERE owner_id = $1 AND category_key = $2
ORDER BY value COLLATE "C"
`

func (q *Queries) ListOptions(ctx context.Context, ownerID uuid.UUID, categoryKey string) ([]string, error) {
	return q.queryStrings(ctx, listOptions, ownerID, categoryKey)
}

const insertOption = `
INSERT INTO taxonomy_options (owner_id, category_key, value)
VALUES ($1, $2, $3)
`

type InsertOptionParams struct {
	OwnerID     uuid.UUID
	CategoryKey string
	Value       string
}

func (q *Queries) InsertOption(ctx context.Context, arg InsertOptionParams) error {
	_, err := q.db.ExecContext(ctx, insertOption, arg.OwnerID, arg.CategoryKey, arg.Value)
	return err
}

const insertOptionIfMissing = `
INSERT INTO taxonomy_options (owner_id, category_key, value)
VALUES ($1, $2, $3)
ON CONFLICT (owner_id, category_key, value) DO NOTHING
`

func (q *Queries) InsertOptionIfMissing(ctx context.Context, arg InsertOptionParams) error {
	_, err := q.db.ExecContext(ctx, insertOptionIfMissing, arg.OwnerID, arg.CategoryKey, arg.Value)
	return err
}

const deleteOption = `
DELETE FROM taxonomy_options
WHERE owner_id = $1 AND category_key = $2 AND value = $3
`

func (q *Queries) DeleteOption(ctx context.Context, arg InsertOptionParams) error {
	_, err := q.db.ExecContext(ctx, deleteOption, arg.OwnerID, arg.CategoryKey, arg.Value)
	return err
}

const listLocations = `
SELECT city_name FROM locations
WHERE owner_id = $1
ORDER BY id
`

func (q *Queries) ListLocations(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	return q.queryStrings(ctx, listLocations, ownerID)
}

const insertLocation = `
INSERT INTO locations (owner_id, city_name) VALUES ($1, $2)
`

func (q *Queries) InsertLocation(ctx context.Context, ownerID uuid.UUID, city string) error {
	_, err := q.db.ExecContext(ctx, insertLocation, ownerID, city)
	return err
}

const insertLocationIfMissing = `
INSERT INTO locations (owner_id, city_name) VALUES ($1, $2)
ON CONFLICT (owner_id, city_name) DO NOTHING
`

func (q *Queries) InsertLocationIfMissing(ctx context.Context, ownerID uuid.UUID, city string) error {
	_, err := q.db.ExecContext(ctx, insertLocationIfMissing, ownerID, city)
	return err
}

const deleteLocation = `
DELETE FROM locations WHERE owner_id = $1 AND city_name = $2
`

func (q *Queries) DeleteLocation(ctx context.Context, ownerID uuid.UUID, city string) error {
	_, err := q.db.ExecContext(ctx, deleteLocation, ownerID, city)
	return err
}

func (q *Queries) queryStrings(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
