package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/services/reminder/application/handlers"
	appsvcs "github.com/ghuser/wardrobe/services/reminder/application/services"
)

// ReminderRoutes registers weather and reminder endpoints. Callers mount it
// behind auth.RequireAuth.
func ReminderRoutes(r chi.Router, svcs *appsvcs.Services, log logger.Logger) {
	h := handlers.NewReminderHandler(svcs, log)
	r.Get("/weather", h.Weather)
	r.Route("/reminders", func(r chi.Router) {
		r.Get("/preview", h.Preview)
		r.Post("/test", h.SendTest)
	})
}
