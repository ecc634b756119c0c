// Package memory holds map-backed taxonomy repositories for tests and local tooling.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	taxonomydomain "github.com/ghuser/wardrobe/services/taxonomy/domain"
	"github.com/ghuser/wardrobe/services/taxonomy/domain/models"
)

type optionKey struct {
	owner uuid.UUID
	key   models.CategoryKey
}

type OptionRepository struct {
	mu     sync.Mutex
	values map[optionKey]map[string]struct{}
}

func NewOptionRepository() *OptionRepository {
	return &OptionRepository{values: make(map[optionKey]map[string]struct{})}
}

func (r *OptionRepository) List(_ context.Context, ownerID uuid.UUID, key models.CategoryKey) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []string{}
	for v := range r.values[optionKey{ownerID, key}] {
		out = append(out, v)
	}
	sort.Strings(out)
	return out, nil
}

func (r *OptionRepository) Add(_ context.Context, ownerID uuid.UUID, key models.CategoryKey, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.insert(optionKey{ownerID, key}, value) {
		return taxonomydomain.ErrOptionAlreadyExists
	}
	return nil
}

func (r *OptionRepository) Remove(_ context.Context, ownerID uuid.UUID, key models.CategoryKey, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values[optionKey{ownerID, key}], value)
	return nil
}

func (r *OptionRepository) AddMissing(_ context.Context, ownerID uuid.UUID, options []models.Option) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range options {
		r.insert(optionKey{ownerID, o.Key}, o.Value)
	}
	return nil
}

func (r *OptionRepository) insert(k optionKey, value string) bool {
	set, ok := r.values[k]
	if !ok {
		set = make(map[string]struct{})
		r.values[k] = set
	}
	if _, dup := set[value]; dup {
		return false
	}
	set[value] = struct{}{}
	return true
}

// LocationRepository keeps cities in insertion order.
type LocationRepository struct {
	mu     sync.Mutex
	cities map[uuid.UUID][]string
}

func NewLocationRepository() *LocationRepository {
	return &LocationRepository{cities: make(map[uuid.UUID][]string)}
}

func (r *LocationRepository) List(_ context.Context, ownerID uuid.UUID) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.cities[ownerID]...), nil
}

func (r *LocationRepository) Add(_ context.Context, ownerID uuid.UUID, city string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.has(ownerID, city) {
		return taxonomydomain.ErrLocationAlreadyExists
	}
	r.cities[ownerID] = append(r.cities[ownerID], city)
	return nil
}

func (r *LocationRepository) Remove(_ context.Context, ownerID uuid.UUID, city string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.cities[ownerID][:0]
	for _, c := range r.cities[ownerID] {
		if c != city {
			kept = append(kept, c)
		}
	}
	r.cities[ownerID] = kept
	return nil
}

func (r *LocationRepository) AddMissing(_ context.Context, ownerID uuid.UUID, cities []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range cities {
		if !r.has(ownerID, c) {
			r.cities[ownerID] = append(r.cities[ownerID], c)
		}
	}
	return nil
}

func (r *LocationRepository) has(ownerID uuid.UUID, city string) bool {
	for _, c := range r.cities[ownerID] {
		if c == city {
			return true
		}
	}
	return false
}
