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

// LocationService manages the cities a user checks weather for.
type LocationService struct {
	repo repositories.LocationRepository
}

func NewLocationService(repo repositories.LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

// List returns cities in the order they were added.
func (s *LocationService) List(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	cities, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return cities, nil
}

func (s *LocationService) Add(ctx context.Context, ownerID uuid.UUID, city string) (string, error) {
	c, err := models.NormalizeValue(city)
	if err != nil {
		return "", apperr.Invalid(taxonomydomain.ErrInvalidLocation, "%s", err)
	}
	if err := s.repo.Add(ctx, ownerID, c); err != nil {
		return "", fmt.Errorf("add location: %w", err)
	}
	return c, nil
}

// Remove deletes city; an absent city is not an error.
func (s *LocationService) Remove(ctx context.Context, ownerID uuid.UUID, city string) error {
	c, err := models.NormalizeValue(city)
	if err != nil {
		return apperr.Invalid(taxonomydomain.ErrInvalidLocation, "%s", err)
	}
	if err := s.repo.Remove(ctx, ownerID, c); err != nil {
		return fmt.Errorf("remove location: %w", err)
	}
	return nil
}

func (s *LocationService) SeedDefaults(ctx context.Context, ownerID uuid.UUID) error {
	if err := s.repo.AddMissing(ctx, ownerID, models.DefaultLocations); err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}
	return nil
}

// Primary returns the owner's first city, or fallback when the list is empty.
func (s *LocationService) Primary(ctx context.Context, ownerID uuid.UUID, fallback string) (string, error) {
	cities, err := s.List(ctx, ownerID)
	if err != nil {
		return "", err
	}
	if len(cities) == 0 {
		return fallback, nil
	}
	return cities[0], nil
}
