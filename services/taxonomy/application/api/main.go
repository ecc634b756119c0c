package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/services/taxonomy/application/handlers"
	appsvcs "github.com/ghuser/wardrobe/services/taxonomy/application/services"
)

// TaxonomyRoutes registers option and location endpoints. Callers mount it
// behind auth.RequireAuth.
func TaxonomyRoutes(r chi.Router, svcs *appsvcs.Services, log logger.Logger) {
	options := handlers.NewOptionHandler(svcs, log)
	locations := handlers.NewLocationHandler(svcs, log)

	r.Route("/options/{key}", func(r chi.Router) {
		r.Get("/", options.List)
		r.Post("/", options.Add)
		r.Delete("/{value}", options.Remove)
	})
	r.Route("/locations", func(r chi.Router) {
		r.Get("/", locations.List)
		r.Post("/", locations.Add)
		r.Delete("/{city}", locations.Remove)
	})
}
