package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/wardrobe/services/catalog/application/services"
)

// CatalogRoutes registers clothing endpoints. Callers mount it behind
// auth.RequireAuth.
func CatalogRoutes(r chi.Router, svcs *appsvcs.Services, log logger.Logger) {
	h := handlers.NewClothesHandler(svcs, log)
	r.Route("/clothes", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/form", h.Form)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
