package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/wardrobe/pkg/apperr"
	pkgcache "github.com/ghuser/wardrobe/pkg/cache"
	"github.com/ghuser/wardrobe/pkg/logger"
	catalogdomain "github.com/ghuser/wardrobe/services/catalog/domain"
	"github.com/ghuser/wardrobe/services/catalog/domain/models"
	"github.com/ghuser/wardrobe/services/catalog/domain/repositories"
	domainsvcs "github.com/ghuser/wardrobe/services/catalog/domain/services"
	taxmodels "github.com/ghuser/wardrobe/services/taxonomy/domain/models"
)

// ChoiceProvider returns the taxonomy values offered for one category.
type ChoiceProvider interface {
	Choices(ctx context.Context, ownerID uuid.UUID, category string) (*taxmodels.Choices, error)
}

// FormOptions describes the entry form for one category.
type FormOptions struct {
	Category models.Category
	Policy   models.Policy
	Choices  taxmodels.Choices
}

// ClothingService orchestrates the catalog. The repository publishes domain
// events; this layer owns validation and the Redis read-through cache.
type ClothingService struct {
	repo    repositories.ClothingRepository
	cache   *pkgcache.ClothingCache
	choices ChoiceProvider
	log     logger.Logger
}

// NewClothingService wires the service. cache and choices may be nil.
func NewClothingService(repo repositories.ClothingRepository, clothingCache *pkgcache.ClothingCache, choices ChoiceProvider, log logger.Logger) *ClothingService {
	if log == nil {
		log = logger.Discard()
	}
	return &ClothingService{repo: repo, cache: clothingCache, choices: choices, log: log}
}

// Add validates d against the category policy and stores a new item.
func (s *ClothingService) Add(ctx context.Context, ownerID uuid.UUID, d models.Draft) (*models.ClothingItem, error) {
	if err := domainsvcs.ApplyPolicy(&d); err != nil {
		return nil, apperr.Invalid(catalogdomain.ErrInvalidClothing, "%s", err)
	}
	item := models.NewClothingItem(ownerID, d)
	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("insert clothing: %w", err)
	}
	return item, nil
}

// List returns the owner's items matching every set filter field, newest first.
func (s *ClothingService) List(ctx context.Context, ownerID uuid.UUID, f models.Filter) ([]*models.ClothingItem, error) {
	if f.Category != "" && !models.Category(f.Category).Valid() {
		return nil, apperr.Invalid(catalogdomain.ErrInvalidFilter, "unknown category %q", f.Category)
	}
	if f.Season != "" && !models.Season(f.Season).Valid() {
		return nil, apperr.Invalid(catalogdomain.ErrInvalidFilter, "unknown season %q", f.Season)
	}

	items, err := s.repo.List(ctx, ownerID, f)
	if err != nil {
		return nil, fmt.Errorf("list clothing: %w", err)
	}
	if f.Season == "" && f.Occasion == "" {
		return items, nil
	}
	out := make([]*models.ClothingItem, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// GetByID reads through the Redis cache. On a miss the Postgres result is
// written back under the generation read beforehand, so a concurrent Update
// or Delete can never be overwritten by the older row.
func (s *ClothingService) GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (*models.ClothingItem, error) {
	if s.cache == nil {
		item, err := s.repo.GetByID(ctx, ownerID, id)
		if err != nil {
			return nil, fmt.Errorf("get clothing: %w", err)
		}
		return item, nil
	}

	cached, err := s.cache.Get(ctx, ownerID, id)
	if err == nil {
		return fromCached(cached), nil
	}
	if !errors.Is(err, redis.Nil) {
		s.log.WarnContext(ctx, "clothing cache read failed", "clothing_id", id, "error", err)
	}
	gen, genErr := s.cache.Generation(ctx, ownerID, id)

	item, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get clothing: %w", err)
	}
	if genErr == nil {
		s.warm(ctx, item, gen)
	}
	return item, nil
}

// GetMany resolves ids in ascending order, skipping ids that no longer exist.
func (s *ClothingService) GetMany(ctx context.Context, ownerID uuid.UUID, ids []int64) ([]*models.ClothingItem, error) {
	items, err := s.repo.GetMany(ctx, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("get clothing: %w", err)
	}
	return items, nil
}

// Update replaces every editable field of an existing item.
func (s *ClothingService) Update(ctx context.Context, ownerID uuid.UUID, id int64, d models.Draft) (*models.ClothingItem, error) {
	if err := domainsvcs.ApplyPolicy(&d); err != nil {
		return nil, apperr.Invalid(catalogdomain.ErrInvalidClothing, "%s", err)
	}
	item := models.NewClothingItem(ownerID, d)
	item.ID = id
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update clothing: %w", err)
	}
	s.evict(ctx, ownerID, id)

	updated, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("reload clothing: %w", err)
	}
	return updated, nil
}

// Delete hard-deletes an item. Outfit records keep the id.
func (s *ClothingService) Delete(ctx context.Context, ownerID uuid.UUID, id int64) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete clothing: %w", err)
	}
	s.evict(ctx, ownerID, id)
	return nil
}

// FormOptions returns the field rules and taxonomy values for category.
func (s *ClothingService) FormOptions(ctx context.Context, ownerID uuid.UUID, category string) (*FormOptions, error) {
	c := models.Category(category)
	policy, ok := models.Policies[c]
	if !ok {
		return nil, apperr.Invalid(catalogdomain.ErrInvalidClothing, "unknown category %q", category)
	}
	opts := &FormOptions{Category: c, Policy: policy}
	if s.choices == nil {
		return opts, nil
	}
	choices, err := s.choices.Choices(ctx, ownerID, category)
	if err != nil {
		return nil, fmt.Errorf("load choices: %w", err)
	}
	opts.Choices = *choices
	if policy.Material == models.Forbidden {
		opts.Choices.Materials = nil
	}
	if policy.SubType == models.Forbidden {
		opts.Choices.SubTypes = nil
	}
	if policy.Occasions == models.Forbidden {
		opts.Choices.Occasions = nil
	}
	return opts, nil
}

// WarmCache loads an item from Postgres into Redis. An item deleted in the
// meantime is skipped.
func (s *ClothingService) WarmCache(ctx context.Context, ownerID uuid.UUID, id int64) error {
	if s.cache == nil {
		return nil
	}
	gen, err := s.cache.Generation(ctx, ownerID, id)
	if err != nil {
		return err
	}
	item, err := s.repo.GetByID(ctx, ownerID, id)
	if errors.Is(err, catalogdomain.ErrClothingNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load clothing: %w", err)
	}
	if err := s.cache.Set(ctx, toCached(item), gen); err != nil && !errors.Is(err, pkgcache.ErrStaleEntry) {
		return err
	}
	return nil
}

// EvictCache drops a cached item.
func (s *ClothingService) EvictCache(ctx context.Context, ownerID uuid.UUID, id int64) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, ownerID, id)
}

func (s *ClothingService) warm(ctx context.Context, item *models.ClothingItem, gen int64) {
	err := s.cache.Set(ctx, toCached(item), gen)
	switch {
	case errors.Is(err, pkgcache.ErrStaleEntry):
		s.log.DebugContext(ctx, "clothing cache warm skipped, entry changed", "clothing_id", item.ID)
	case err != nil:
		s.log.WarnContext(ctx, "clothing cache warm failed", "clothing_id", item.ID, "error", err)
	}
}

func (s *ClothingService) evict(ctx context.Context, ownerID uuid.UUID, id int64) {
	if err := s.EvictCache(ctx, ownerID, id); err != nil {
		s.log.WarnContext(ctx, "clothing cache evict failed", "clothing_id", id, "error", err)
	}
}

func toCached(item *models.ClothingItem) *pkgcache.CachedClothing {
	seasons := make([]string, len(item.Seasons))
	for i, s := range item.Seasons {
		seasons[i] = string(s)
	}
	return &pkgcache.CachedClothing{
		ID:          item.ID,
		OwnerID:     item.OwnerID,
		Category:    string(item.Category),
		Color:       item.Color,
		Material:    item.Material,
		SubType:     item.SubType,
		Seasons:     seasons,
		Occasions:   item.Occasions,
		DisplayName: item.DisplayName,
		CreatedAt:   item.CreatedAt,
	}
}

func fromCached(c *pkgcache.CachedClothing) *models.ClothingItem {
	seasons := make([]models.Season, len(c.Seasons))
	for i, s := range c.Seasons {
		seasons[i] = models.Season(s)
	}
	return &models.ClothingItem{
		ID:          c.ID,
		OwnerID:     c.OwnerID,
		Category:    models.Category(c.Category),
		Color:       c.Color,
		Material:    c.Material,
		SubType:     c.SubType,
		Seasons:     seasons,
		Occasions:   c.Occasions,
		DisplayName: c.DisplayName,
		CreatedAt:   c.CreatedAt,
	}
}
