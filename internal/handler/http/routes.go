package http

import (
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/health", h.getHealth)
	router.Handle("/metrics", h.metrics.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getVersion)
		r.Post("/sync", h.postSync)

		r.Route("/machines", func(r chi.Router) {
			r.Get("/", h.list(models.Located))
			r.Post("/", h.create(models.Located))
			r.Get("/filters", h.getFilters)
			r.Get("/locations", h.getLocations)
			// moves of machines the server has never seen
			r.Post("/archive", h.create(models.Archived))
			r.Post("/sold", h.create(models.Sold))

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.detail(models.Located))
				r.Put("/", h.update(models.Located))
				r.Delete("/", h.delete(models.Located))
				r.Post("/archive", h.move(models.Archived))
				r.Post("/sold", h.move(models.Sold))
				r.Put("/archive", h.update(models.Archived))
				r.Put("/sold", h.update(models.Sold))
			})
		})

		r.Route("/contact", func(r chi.Router) {
			r.Get("/", h.list(models.Contacts))
			r.Post("/", h.create(models.Contacts))
			r.Get("/{id}", h.detail(models.Contacts))
			r.Put("/{id}", h.update(models.Contacts))
			r.Delete("/{id}", h.delete(models.Contacts))
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
