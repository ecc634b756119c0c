package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/apperr"
	taxonomydomain "github.com/ghuser/wardrobe/services/taxonomy/domain"
	"github.com/ghuser/wardrobe/services/taxonomy/domain/models"
	"github.com/ghuser/wardrobe/services/taxonomy/domain/repositories"
)

// OptionService manages the per-owner value lists behind the clothing entry form.
type OptionService struct {
	repo repositories.OptionRepository
}

func NewOptionService(repo repositories.OptionRepository) *OptionService {
	return &OptionService{repo: repo}
}

// List returns the values under key in lexicographic order.
func (s *OptionService) List(ctx context.Context, ownerID uuid.UUID, key string) ([]string, error) {
	k, err := parseKey(key)
	if err != nil {
		return nil, err
	}
	values, err := s.repo.List(ctx, ownerID, k)
	if err != nil {
		return nil, fmt.Errorf("list options: %w", err)
	}
	return values, nil
}

// Add appends value to key's list. A duplicate fails with ErrOptionAlreadyExists
// and leaves the list unchanged.
func (s *OptionService) Add(ctx context.Context, ownerID uuid.UUID, key, value string) (string, error) {
	k, err := parseKey(key)
	if err != nil {
		return "", err
	}
	v, err := models.NormalizeValue(value)
	if err != nil {
		return "", apperr.Invalid(taxonomydomain.ErrInvalidOption, "%s", err)
	}
	if err := s.repo.Add(ctx, ownerID, k, v); err != nil {
		return "", fmt.Errorf("add option: %w", err)
	}
	return v, nil
}

// Remove deletes value from key's list. Removing an absent value succeeds.
// Items already using the value keep it.
func (s *OptionService) Remove(ctx context.Context, ownerID uuid.UUID, key, value string) error {
	k, err := parseKey(key)
	if err != nil {
		return err
	}
	v, err := models.NormalizeValue(value)
	if err != nil {
		return apperr.Invalid(taxonomydomain.ErrInvalidOption, "%s", err)
	}
	if err := s.repo.Remove(ctx, ownerID, k, v); err != nil {
		return fmt.Errorf("remove option: %w", err)
	}
	return nil
}

// SeedDefaults inserts the default lists, skipping values the owner already has.
func (s *OptionService) SeedDefaults(ctx context.Context, ownerID uuid.UUID) error {
	if err := s.repo.AddMissing(ctx, ownerID, models.DefaultOptionList()); err != nil {
		return fmt.Errorf("seed options: %w", err)
	}
	return nil
}

// Choices collects the lists offered when entering an item of category.
func (s *OptionService) Choices(ctx context.Context, ownerID uuid.UUID, category string) (*models.Choices, error) {
	lists := make(map[models.Facet][]string, 4)
	for _, facet := range []models.Facet{models.FacetColor, models.FacetMaterial, models.FacetSubType, models.FacetOccasion} {
		key := models.KeyFor(facet, category)
		if facet != models.FacetOccasion {
			if _, err := models.ParseCategoryKey(key.String()); err != nil {
				return nil, apperr.Invalid(taxonomydomain.ErrInvalidCategoryKey, "%s", err)
			}
		}
		values, err := s.repo.List(ctx, ownerID, key)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", key, err)
		}
		lists[facet] = values
	}
	return &models.Choices{
		Colors:    lists[models.FacetColor],
		Materials: lists[models.FacetMaterial],
		SubTypes:  lists[models.FacetSubType],
		Occasions: lists[models.FacetOccasion],
	}, nil
}

func parseKey(raw string) (models.CategoryKey, error) {
	k, err := models.ParseCategoryKey(raw)
	if err != nil {
		return "", apperr.Invalid(taxonomydomain.ErrInvalidCategoryKey, "%s", err)
	}
	return k, nil
}
