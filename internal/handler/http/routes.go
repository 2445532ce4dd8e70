package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/session", h.login)
		r.Post("/api/session/logout", h.logout)

		r.Post("/api/password-reset", h.requestPasswordReset)
		r.Get("/api/password-reset/key/{key}", h.getPasswordResetByKey)
		r.Get("/api/password-reset/{id}", h.getPasswordReset)
		r.Get("/api/password-reset/{id}/validate", h.validatePasswordReset)
		r.Put("/api/password-reset/{id}", h.updatePasswordReset)
	})

	// routes behind the session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/session/{id}", h.getSession)
		r.Put("/api/session/start", h.startSession)

		r.Get("/api/password-resets", h.listPasswordResets)
		r.Delete("/api/password-reset/{id}", h.deletePasswordReset)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
