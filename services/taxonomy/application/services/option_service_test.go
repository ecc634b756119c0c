package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/wardrobe/pkg/apperr"
	taxonomydomain "github.com/ghuser/wardrobe/services/taxonomy/domain"
	"github.com/ghuser/wardrobe/services/taxonomy/infrastructure/persistence/memory"
)

func newOptionService() *OptionService {
	return NewOptionService(memory.NewOptionRepository())
}

func TestOptionService_ListIsLexicographic(t *testing.T) {
	ctx := context.Background()
	svc := newOptionService()
	owner := uuid.New()

	for _, v := range []string{"white", "black", "navy"} {
		_, err := svc.Add(ctx, owner, "color:top", v)
		require.NoError(t, err)
	}

	got, err := svc.List(ctx, owner, "color:top")
	require.NoError(t, err)
	assert.Equal(t, []string{"black", "navy", "white"}, got)
}

func TestOptionService_DuplicateAddLeavesListUnchanged(t *testing.T) {
	ctx := context.Background()
	svc := newOptionService()
	owner := uuid.New()

	_, err := svc.Add(ctx, owner, "color:top", "navy")
	require.NoError(t, err)
	before, err := svc.List(ctx, owner, "color:top")
	require.NoError(t, err)

	_, err = svc.Add(ctx, owner, "color:top", " navy ")
	require.Error(t, err)
	assert.ErrorIs(t, err, taxonomydomain.ErrOptionAlreadyExists)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	after, err := svc.List(ctx, owner, "color:top")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestOptionService_ConcurrentDuplicateAdd(t *testing.T) {
	ctx := context.Background()
	svc := newOptionService()
	owner := uuid.New()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Add(ctx, owner, "occasion", "hiking")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, taxonomydomain.ErrOptionAlreadyExists)
	}
	assert.Equal(t, 1, succeeded)

	got, err := svc.List(ctx, owner, "occasion")
	require.NoError(t, err)
	assert.Equal(t, []string{"hiking"}, got)
}

func TestOptionService_RemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newOptionService()
	owner := uuid.New()

	_, err := svc.Add(ctx, owner, "subtype:socks", "crew")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, owner, "subtype:socks", "crew"))
	require.NoError(t, svc.Remove(ctx, owner, "subtype:socks", "crew"))

	got, err := svc.List(ctx, owner, "subtype:socks")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOptionService_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newOptionService()
	owner := uuid.New()

	_, err := svc.Add(ctx, owner, "size:top", "xl")
	assert.ErrorIs(t, err, taxonomydomain.ErrInvalidCategoryKey)

	_, err = svc.Add(ctx, owner, "color:top", "   ")
	assert.ErrorIs(t, err, taxonomydomain.ErrInvalidOption)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.List(ctx, owner, "color:hat")
	assert.ErrorIs(t, err, taxonomydomain.ErrInvalidCategoryKey)
}

func TestOptionService_OwnersAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := newOptionService()
	alice, bob := uuid.New(), uuid.New()

	_, err := svc.Add(ctx, alice, "color:bottom", "olive")
	require.NoError(t, err)

	got, err := svc.List(ctx, bob, "color:bottom")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOptionService_SeedDefaultsTwice(t *testing.T) {
	ctx := context.Background()
	svc := newOptionService()
	owner := uuid.New()

	require.NoError(t, svc.SeedDefaults(ctx, owner))
	require.NoError(t, svc.SeedDefaults(ctx, owner))

	got, err := svc.List(ctx, owner, "subtype:socks")
	require.NoError(t, err)
	assert.Equal(t, []string{"ankle", "crew", "knee-high"}, got)

	occasions, err := svc.List(ctx, owner, "occasion")
	require.NoError(t, err)
	assert.Equal(t, []string{"casual", "formal", "sport"}, occasions)
}

func TestOptionService_Choices(t *testing.T) {
	ctx := context.Background()
	svc := newOptionService()
	owner := uuid.New()
	require.NoError(t, svc.SeedDefaults(ctx, owner))

	choices, err := svc.Choices(ctx, owner, "outerwear")
	require.NoError(t, err)
	assert.Equal(t, []string{"black", "white"}, choices.Colors)
	assert.Contains(t, choices.Materials, "down")
	assert.Empty(t, choices.SubTypes)
	assert.Equal(t, []string{"casual", "formal", "sport"}, choices.Occasions)

	_, err = svc.Choices(ctx, owner, "hat")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}
