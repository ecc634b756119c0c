package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/services/user/application/handlers"
	appsvcs "github.com/ghuser/wardrobe/services/user/application/services"
)

// PublicRoutes registers the endpoints reachable without a session.
func PublicRoutes(r chi.Router, svcs *appsvcs.Services, store sessions.Store, log logger.Logger) {
	h := handlers.NewUserHandler(svcs, store, log)
	r.Post("/users", h.Register)
	r.Post("/sessions", h.SignIn)
}

// AccountRoutes registers the signed-in user's own endpoints. Callers mount
// it behind auth.RequireAuth.
func AccountRoutes(r chi.Router, svcs *appsvcs.Services, store sessions.Store, log logger.Logger) {
	h := handlers.NewUserHandler(svcs, store, log)
	r.Delete("/sessions", h.SignOut)
	r.Route("/me", func(r chi.Router) {
		r.Get("/", h.Me)
		r.Put("/", h.UpdateEmail)
		r.Delete("/", h.Delete)
		r.Put("/reminders", h.UpdateReminders)
	})
}
