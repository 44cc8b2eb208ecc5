package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /sse inside the auth group.
func NewRouter(h *Handler, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Events CRUD.
	r.Get("/events", h.ListEvents)
	r.Post("/events", h.CreateEvent)
	r.Delete("/events/{id}", h.DeleteEvent)

	// Export and share.
	r.Get("/events/{id}/invite", h.ExportInvite)
	r.Post("/events/{id}/share", h.ShareEvent)

	// Calendar views.
	r.Get("/views/day", h.DayView)
	r.Get("/views/week", h.WeekView)
	r.Get("/views/month", h.MonthView)
	r.Get("/views/dashboard", h.DashboardView)

	// Settings.
	r.Get("/settings/email", h.GetEmail)
	r.Put("/settings/email", h.PutEmail)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/sse", sseHandler.ServeHTTP)
	}

	return r
}
