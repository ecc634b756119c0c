// Package memory holds a map-backed OutfitRepository for tests and local tooling.
package memory

import (
	"context"
	"sort"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/services/outfit/domain/models"
)

type recordKey struct {
	owner uuid.UUID
	date  civil.Date
}

type OutfitRepository struct {
	mu      sync.Mutex
	records map[recordKey]map[int64]struct{}
}

func NewOutfitRepository() *OutfitRepository {
	return &OutfitRepository{records: make(map[recordKey]map[int64]struct{})}
}

func (r *OutfitRepository) Merge(_ context.Context, ownerID uuid.UUID, date civil.Date, ids []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := r.record(recordKey{ownerID, date})
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return nil
}

func (r *OutfitRepository) Clear(_ context.Context, ownerID uuid.UUID, date civil.Date) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[recordKey{ownerID, date}] = make(map[int64]struct{})
	return nil
}

func (r *OutfitRepository) Get(_ context.Context, ownerID uuid.UUID, date civil.Date) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sortedIDs(r.records[recordKey{ownerID, date}]), nil
}

func (r *OutfitRepository) Range(_ context.Context, ownerID uuid.UUID, start, end civil.Date) ([]models.Outfit, error) {
	out := r.filter(ownerID, func(o models.Outfit) bool {
		return !o.Date.Before(start) && !o.Date.After(end)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *OutfitRepository) Before(_ context.Context, ownerID uuid.UUID, asOf civil.Date) ([]models.Outfit, error) {
	out := r.filter(ownerID, func(o models.Outfit) bool { return o.Date.Before(asOf) })
	sortDesc(out)
	return out, nil
}

func (r *OutfitRepository) Containing(_ context.Context, ownerID uuid.UUID, itemID int64) ([]models.Outfit, error) {
	out := r.filter(ownerID, func(o models.Outfit) bool { return o.Contains(itemID) })
	sortDesc(out)
	return out, nil
}

func (r *OutfitRepository) record(k recordKey) map[int64]struct{} {
	set, ok := r.records[k]
	if !ok {
		set = make(map[int64]struct{})
		r.records[k] = set
	}
	return set
}

func (r *OutfitRepository) filter(ownerID uuid.UUID, keep func(models.Outfit) bool) []models.Outfit {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Outfit{}
	for k, set := range r.records {
		if k.owner != ownerID {
			continue
		}
		o := models.Outfit{OwnerID: ownerID, Date: k.date, ItemIDs: sortedIDs(set)}
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

func sortedIDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortDesc(out []models.Outfit) {
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
}
