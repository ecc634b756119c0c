package services

import (
	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/services/user/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the user context.
type Services struct {
	Users *UserService
}

// New wires the user service. seeders run for every new account.
func New(a *app.Application, seeders ...Seeder) *Services {
	return &Services{
		Users: NewUserService(postgres.NewUserRepository(a.Db), a.Logger, seeders...),
	}
}
