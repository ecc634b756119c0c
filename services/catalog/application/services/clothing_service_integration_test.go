//go:build integration

package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"

	pkgcache "github.com/ghuser/wardrobe/pkg/cache"
	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/pkg/testutil/containers"
	catalogdomain "github.com/ghuser/wardrobe/services/catalog/domain"
	"github.com/ghuser/wardrobe/services/catalog/domain/models"
	"github.com/ghuser/wardrobe/services/catalog/infrastructure/persistence/memory"
)

// ClothingCacheSuite runs the service against a real Redis read-through cache.
type ClothingCacheSuite struct {
	suite.Suite
	rc    *containers.RedisContainer
	redis *pkgcache.RedisClient
	ctx   context.Context
	owner uuid.UUID
	svc   *ClothingService
}

func TestClothingCacheSuite(t *testing.T) {
	suite.Run(t, new(ClothingCacheSuite))
}

func (s *ClothingCacheSuite) SetupSuite() {
	s.rc = containers.NewRedisContainer(s.T())
	rdb, err := pkgcache.NewRedisClient(&config.Config{RedisURL: s.rc.URL})
	s.Require().NoError(err)
	s.redis = rdb
}

func (s *ClothingCacheSuite) TearDownSuite() {
	_ = s.redis.Close()
}

func (s *ClothingCacheSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.rc.FlushAll(s.ctx))
	s.owner = uuid.New()
	s.svc = NewClothingService(memory.NewClothingRepository(), pkgcache.NewClothingCache(s.redis), nil, logger.Discard())
}

func (s *ClothingCacheSuite) add(color string) *models.ClothingItem {
	item, err := s.svc.Add(s.ctx, s.owner, top(color, []string{"spring"}))
	s.Require().NoError(err)
	return item
}

func (s *ClothingCacheSuite) TestDeletedItemIsAbsentAfterCachedRead() {
	for range 50 {
		item := s.add("red")
		_, err := s.svc.GetByID(s.ctx, s.owner, item.ID)
		s.Require().NoError(err)

		s.Require().NoError(s.svc.Delete(s.ctx, s.owner, item.ID))

		_, err = s.svc.GetByID(s.ctx, s.owner, item.ID)
		s.Require().ErrorIs(err, catalogdomain.ErrClothingNotFound)
	}
}

func (s *ClothingCacheSuite) TestUpdateReplacesCachedItem() {
	item := s.add("red")
	_, err := s.svc.GetByID(s.ctx, s.owner, item.ID)
	s.Require().NoError(err)

	_, err = s.svc.Update(s.ctx, s.owner, item.ID, top("blue", []string{"winter"}))
	s.Require().NoError(err)

	got, err := s.svc.GetByID(s.ctx, s.owner, item.ID)
	s.Require().NoError(err)
	s.Equal("blue", got.Color)
	s.Equal([]models.Season{"winter"}, got.Seasons)
}

func (s *ClothingCacheSuite) TestReadRacingDelete() {
	for range 100 {
		item := s.add("red")

		var g errgroup.Group
		g.Go(func() error {
			_, _ = s.svc.GetByID(s.ctx, s.owner, item.ID)
			return nil
		})
		g.Go(func() error { return s.svc.Delete(s.ctx, s.owner, item.ID) })
		s.Require().NoError(g.Wait())

		_, err := s.svc.GetByID(s.ctx, s.owner, item.ID)
		s.Require().ErrorIs(err, catalogdomain.ErrClothingNotFound, "item %d served after delete", item.ID)
	}
}

func (s *ClothingCacheSuite) TestReadRacingUpdate() {
	for range 100 {
		item := s.add("red")

		var g errgroup.Group
		g.Go(func() error {
			_, err := s.svc.GetByID(s.ctx, s.owner, item.ID)
			return err
		})
		g.Go(func() error {
			_, err := s.svc.Update(s.ctx, s.owner, item.ID, top("blue", []string{"spring"}))
			return err
		})
		s.Require().NoError(g.Wait())

		got, err := s.svc.GetByID(s.ctx, s.owner, item.ID)
		s.Require().NoError(err)
		s.Require().Equal("blue", got.Color, "item %d served before update", item.ID)
	}
}
