// Package memory holds a map-backed ClothingRepository for tests and local tooling.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	catalogdomain "github.com/ghuser/wardrobe/services/catalog/domain"
	"github.com/ghuser/wardrobe/services/catalog/domain/models"
)

type ClothingRepository struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*models.ClothingItem
}

func NewClothingRepository() *ClothingRepository {
	return &ClothingRepository{items: make(map[int64]*models.ClothingItem)}
}

func (r *ClothingRepository) Insert(_ context.Context, item *models.ClothingItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = clone(item)
	return nil
}

func (r *ClothingRepository) List(_ context.Context, ownerID uuid.UUID, filter models.Filter) ([]*models.ClothingItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sqlPart := models.Filter{Category: filter.Category, Color: filter.Color, Material: filter.Material}
	out := []*models.ClothingItem{}
	for _, item := range r.items {
		if item.OwnerID == ownerID && sqlPart.Matches(item) {
			out = append(out, clone(item))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *ClothingRepository) GetByID(_ context.Context, ownerID uuid.UUID, id int64) (*models.ClothingItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok || item.OwnerID != ownerID {
		return nil, catalogdomain.ErrClothingNotFound
	}
	return clone(item), nil
}

func (r *ClothingRepository) GetMany(_ context.Context, ownerID uuid.UUID, ids []int64) ([]*models.ClothingItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[int64]bool, len(ids))
	out := []*models.ClothingItem{}
	for _, id := range ids {
		item, ok := r.items[id]
		if !ok || item.OwnerID != ownerID || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, clone(item))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ClothingRepository) Update(_ context.Context, item *models.ClothingItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[item.ID]
	if !ok || existing.OwnerID != item.OwnerID {
		return catalogdomain.ErrClothingNotFound
	}
	updated := clone(item)
	updated.CreatedAt = existing.CreatedAt
	r.items[item.ID] = updated
	return nil
}

func (r *ClothingRepository) Delete(_ context.Context, ownerID uuid.UUID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok || item.OwnerID != ownerID {
		return catalogdomain.ErrClothingNotFound
	}
	delete(r.items, id)
	return nil
}

func clone(item *models.ClothingItem) *models.ClothingItem {
	c := *item
	c.Seasons = append([]models.Season{}, item.Seasons...)
	c.Occasions = append([]string{}, item.Occasions...)
	return &c
}
