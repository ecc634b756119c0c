package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ghuser/wardrobe/pkg/apperr"
	"github.com/ghuser/wardrobe/pkg/logger"
	catalogdomain "github.com/ghuser/wardrobe/services/catalog/domain"
	"github.com/ghuser/wardrobe/services/catalog/domain/models"
	"github.com/ghuser/wardrobe/services/catalog/infrastructure/persistence/memory"
	taxsvcs "github.com/ghuser/wardrobe/services/taxonomy/application/services"
	taxmemory "github.com/ghuser/wardrobe/services/taxonomy/infrastructure/persistence/memory"
)

type ClothingServiceSuite struct {
	suite.Suite
	ctx     context.Context
	owner   uuid.UUID
	svc     *ClothingService
	options *taxsvcs.OptionService
}

func (s *ClothingServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.owner = uuid.New()
	s.options = taxsvcs.NewOptionService(taxmemory.NewOptionRepository())
	s.svc = NewClothingService(memory.NewClothingRepository(), nil, s.options, logger.Discard())
}

func TestClothingServiceSuite(t *testing.T) {
	suite.Run(t, new(ClothingServiceSuite))
}

func top(color string, seasons []string, occasions ...string) models.Draft {
	return models.Draft{
		Category:  "top",
		Color:     color,
		Material:  "shirt",
		SubType:   "long-sleeve",
		Seasons:   seasons,
		Occasions: occasions,
	}
}

func (s *ClothingServiceSuite) add(d models.Draft) *models.ClothingItem {
	item, err := s.svc.Add(s.ctx, s.owner, d)
	s.Require().NoError(err)
	return item
}

func (s *ClothingServiceSuite) TestSocksNeverStoreMaterialOrOccasions() {
	item := s.add(models.Draft{
		Category:  "socks",
		Color:     "white",
		Material:  "wool",
		SubType:   "crew",
		Seasons:   []string{"winter"},
		Occasions: []string{"sport"},
	})

	got, err := s.svc.GetByID(s.ctx, s.owner, item.ID)
	s.Require().NoError(err)
	s.Empty(got.Material)
	s.Empty(got.Occasions)
	s.Equal("crew", got.SubType)
}

func (s *ClothingServiceSuite) TestAddRejectsPolicyViolation() {
	_, err := s.svc.Add(s.ctx, s.owner, models.Draft{Category: "outerwear", Color: "black", Seasons: []string{"winter"}})
	s.Require().Error(err)
	s.ErrorIs(err, catalogdomain.ErrInvalidClothing)
	s.ErrorIs(err, apperr.ErrValidation)

	items, err := s.svc.List(s.ctx, s.owner, models.Filter{})
	s.Require().NoError(err)
	s.Empty(items)
}

func (s *ClothingServiceSuite) TestListNewestFirstWithFilters() {
	a := s.add(top("white", []string{"spring", "summer"}, "casual"))
	b := s.add(top("black", []string{"winter"}, "formal"))
	c := s.add(top("white", []string{"winter"}, "formal", "casual"))

	all, err := s.svc.List(s.ctx, s.owner, models.Filter{})
	s.Require().NoError(err)
	s.Equal([]int64{c.ID, b.ID, a.ID}, ids(all))

	white, err := s.svc.List(s.ctx, s.owner, models.Filter{Color: "white"})
	s.Require().NoError(err)
	s.Equal([]int64{c.ID, a.ID}, ids(white))

	winterFormal, err := s.svc.List(s.ctx, s.owner, models.Filter{Season: "winter", Occasion: "formal"})
	s.Require().NoError(err)
	s.Equal([]int64{c.ID, b.ID}, ids(winterFormal))

	whiteWinterCasual, err := s.svc.List(s.ctx, s.owner, models.Filter{Color: "white", Season: "winter", Occasion: "casual"})
	s.Require().NoError(err)
	s.Equal([]int64{c.ID}, ids(whiteWinterCasual))

	_, err = s.svc.List(s.ctx, s.owner, models.Filter{Season: "monsoon"})
	s.ErrorIs(err, catalogdomain.ErrInvalidFilter)
}

func (s *ClothingServiceSuite) TestOwnerScoping() {
	item := s.add(top("white", []string{"summer"}, "casual"))

	_, err := s.svc.GetByID(s.ctx, uuid.New(), item.ID)
	s.ErrorIs(err, catalogdomain.ErrClothingNotFound)
	s.ErrorIs(s.svc.Delete(s.ctx, uuid.New(), item.ID), catalogdomain.ErrClothingNotFound)
}

func (s *ClothingServiceSuite) TestUpdateReplacesAllFields() {
	item := s.add(top("white", []string{"summer"}, "casual"))

	updated, err := s.svc.Update(s.ctx, s.owner, item.ID, models.Draft{
		Category:    "outerwear",
		Color:       "black",
		Material:    "down",
		SubType:     "long-sleeve",
		Seasons:     []string{"winter"},
		Occasions:   []string{"formal"},
		DisplayName: "Parka",
	})
	s.Require().NoError(err)
	s.Equal(models.CategoryOuterwear, updated.Category)
	s.Empty(updated.SubType)
	s.Equal([]models.Season{models.Winter}, updated.Seasons)
	s.Equal("Parka", updated.Label())
	s.Equal(item.CreatedAt, updated.CreatedAt)

	_, err = s.svc.Update(s.ctx, s.owner, 999, top("white", []string{"summer"}, "casual"))
	s.ErrorIs(err, catalogdomain.ErrClothingNotFound)
}

func (s *ClothingServiceSuite) TestDeleteThenGetIsNotFound() {
	item := s.add(top("white", []string{"summer"}, "casual"))
	s.Require().NoError(s.svc.Delete(s.ctx, s.owner, item.ID))

	_, err := s.svc.GetByID(s.ctx, s.owner, item.ID)
	s.ErrorIs(err, catalogdomain.ErrClothingNotFound)
	s.ErrorIs(s.svc.Delete(s.ctx, s.owner, item.ID), catalogdomain.ErrClothingNotFound)
}

func (s *ClothingServiceSuite) TestGetManySkipsMissing() {
	a := s.add(top("white", []string{"summer"}, "casual"))
	b := s.add(top("black", []string{"summer"}, "casual"))

	got, err := s.svc.GetMany(s.ctx, s.owner, []int64{b.ID, 404, a.ID})
	s.Require().NoError(err)
	s.Equal([]int64{a.ID, b.ID}, ids(got))
}

func (s *ClothingServiceSuite) TestFormOptions() {
	s.Require().NoError(s.options.SeedDefaults(s.ctx, s.owner))

	socks, err := s.svc.FormOptions(s.ctx, s.owner, "socks")
	s.Require().NoError(err)
	s.Equal(models.Forbidden, socks.Policy.Material)
	s.Equal(models.Required, socks.Policy.SubType)
	s.Nil(socks.Choices.Materials)
	s.Nil(socks.Choices.Occasions)
	s.Equal([]string{"ankle", "crew", "knee-high"}, socks.Choices.SubTypes)

	_, err = s.svc.FormOptions(s.ctx, s.owner, "hat")
	s.ErrorIs(err, apperr.ErrValidation)
}

func (s *ClothingServiceSuite) TestCacheHooksAreNoopsWithoutRedis() {
	s.NoError(s.svc.WarmCache(s.ctx, s.owner, 1))
	s.NoError(s.svc.EvictCache(s.ctx, s.owner, 1))
}

func ids(items []*models.ClothingItem) []int64 {
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestCachedRoundTrip(t *testing.T) {
	item := &models.ClothingItem{
		ID:        3,
		OwnerID:   uuid.New(),
		Category:  models.CategoryBottom,
		Color:     "black",
		Material:  "denim",
		SubType:   "trousers",
		Seasons:   []models.Season{models.Spring, models.Autumn},
		Occasions: []string{"casual"},
	}
	got := fromCached(toCached(item))
	require.Equal(t, item, got)
	assert.Equal(t, "XXX", got.Label())
}
