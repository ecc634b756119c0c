package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Clothing struct {
	ID          int64
	OwnerID     uuid.UUID
	Category    string
	Color       string
	Material    sql.NullString
	SubType     sql.NullString
	DisplayName sql.NullString
	CreatedAt   time.Time
}

// ClothingValue is one row of clothing_seasons or clothing_occasions.
type ClothingValue struct {
	ClothingID int64
	Value      string
}
