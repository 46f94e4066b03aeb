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
		r.Head("/api/health", h.health)
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/sync/delta", h.getDeltas)
		r.With(withGZip, h.verifyHash).Post("/api/sync/delta", h.uploadDeltas)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
