package postgres

import (
	"database/sql"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ghuser/wardrobe/services/outfit/domain/models"
	"github.com/ghuser/wardrobe/services/outfit/infrastructure/persistence/postgres/db"
)

func TestGroup(t *testing.T) {
	owner := uuid.New()
	day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }
	id := func(v int64) sql.NullInt64 { return sql.NullInt64{Int64: v, Valid: true} }

	got := group(owner, []db.OutfitItemRow{
		{OutfitDate: day(6), ClothingID: id(1)},
		{OutfitDate: day(6), ClothingID: id(2)},
		{OutfitDate: day(7)},
		{OutfitDate: day(8), ClothingID: id(3)},
	})

	assert.Equal(t, []models.Outfit{
		{OwnerID: owner, Date: civil.Date{Year: 2025, Month: 1, Day: 6}, ItemIDs: []int64{1, 2}},
		{OwnerID: owner, Date: civil.Date{Year: 2025, Month: 1, Day: 7}, ItemIDs: []int64{}},
		{OwnerID: owner, Date: civil.Date{Year: 2025, Month: 1, Day: 8}, ItemIDs: []int64{3}},
	}, got)
	assert.Equal(t, []models.Outfit{}, group(owner, nil))
}
