package services

import (
	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/services/outfit/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the outfit context.
type Services struct {
	Planner *PlannerService
	History *HistoryService
}

// New wires the planner and history services over one PostgreSQL repository.
// items resolves clothing ids for rendering.
func New(a *app.Application, items ItemResolver) *Services {
	repo := postgres.NewOutfitRepository(a.Db)
	return &Services{
		Planner: NewPlannerService(repo, items, a.Config.Location()),
		History: NewHistoryService(repo, items),
	}
}
