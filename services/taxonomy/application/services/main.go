package services

import (
	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/services/taxonomy/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the taxonomy context.
type Services struct {
	Options   *OptionService
	Locations *LocationService
}

// New wires the taxonomy services with PostgreSQL repositories.
func New(a *app.Application) *Services {
	return &Services{
		Options:   NewOptionService(postgres.NewOptionRepository(a.Db)),
		Locations: NewLocationService(postgres.NewLocationRepository(a.Db)),
	}
}
