package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireVenue(r chi.Router, handler *adaptor.VenueHandler) {
	r.Route("/api/venues", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/", handler.Create)
		r.Get("/{id}", handler.Get)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
}
