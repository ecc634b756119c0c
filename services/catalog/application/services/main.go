package services

import (
	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/pkg/cache"
	"github.com/ghuser/wardrobe/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the catalog context.
type Services struct {
	Clothing *ClothingService
}

// New wires the catalog services. choices supplies entry-form taxonomy values;
// a nil Redis client disables the read-through cache.
func New(a *app.Application, choices ChoiceProvider) *Services {
	repo := postgres.NewClothingRepository(a.Db, a.EventBus)
	var clothingCache *cache.ClothingCache
	if a.Redis != nil {
		clothingCache = cache.NewClothingCache(a.Redis)
	}
	return &Services{
		Clothing: NewClothingService(repo, clothingCache, choices, a.Logger),
	}
}
