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

	router.Get("/", h.index)

	router.Route("/customers", func(r chi.Router) {
		r.Get("/", h.listCustomers)
		r.With(withJSONContentType).Post("/", h.createCustomer)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getCustomer)
			r.With(withJSONContentType).Put("/", h.updateCustomer)
			r.Delete("/", h.deleteCustomer)
		})
	})

	return router
}
