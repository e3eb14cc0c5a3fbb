package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/abhiwebdesign/dearyou-backend/internal/handlers"
)

// SetupRoutes mounts all API endpoints under the configured prefix.
func SetupRoutes(r *chi.Mux, h *handlers.Handler, prefix string) {
	r.Route(prefix, func(api chi.Router) {
		api.Get("/", h.Root)

		// Status check routes
		api.Post("/status", h.CreateStatusCheck)
		api.Get("/status", h.ListStatusChecks)

		// Journal personalization form
		api.Post("/submit-journal", h.SubmitJournal)

		// Early access signup
		api.Post("/email-signup", h.EmailSignup)
	})
}
