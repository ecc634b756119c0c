package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/services/outfit/application/handlers"
	appsvcs "github.com/ghuser/wardrobe/services/outfit/application/services"
)

// OutfitRoutes registers the outfit ledger, calendar and history endpoints.
// Callers mount it behind auth.RequireAuth.
func OutfitRoutes(r chi.Router, svcs *appsvcs.Services, log logger.Logger) {
	outfits := handlers.NewOutfitHandler(svcs, log)
	calendar := handlers.NewCalendarHandler(svcs, log)
	history := handlers.NewHistoryHandler(svcs, log)

	r.Route("/outfits", func(r chi.Router) {
		r.Get("/", outfits.Range)
		r.Get("/past", outfits.Past)
		r.Get("/upcoming", outfits.Upcoming)
		r.Get("/{date}", outfits.Get)
		r.Post("/{date}", outfits.Save)
		r.Delete("/{date}", outfits.Clear)
	})
	r.Get("/calendar", calendar.Week)
	r.Route("/history", func(r chi.Router) {
		r.Get("/report", history.Report)
		r.Get("/{id}", history.Item)
	})
}
