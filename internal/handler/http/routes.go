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
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		if h.tokenSignKey != "" {
			r.Use(h.auth)
		}

		r.Get("/api/entities", h.listEntities)
		r.Route("/api/entities/{entity}", func(r chi.Router) {
			r.Get("/records", h.listRecords)
			r.Post("/records", h.createRecord)
			r.Put("/records/{remoteID}", h.updateRecord)

			r.Post("/sync", h.syncEntity)
			r.Post("/import", h.importEntity)
			r.Post("/migrate", h.migrateEntity)
			r.Get("/compare", h.compareEntity)
		})
		r.Post("/api/sync", h.syncAll)
		r.Get("/api/uploads/status", h.uploadStatus)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
