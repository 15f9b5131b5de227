package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, handler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/", handler.Create)

		// Fixed path before the id wildcard so "revenue" never parses as an id
		r.Get("/revenue/venue", handler.RevenueByVenue)

		r.Get("/{id}", handler.Get)
		r.Put("/{id}/status", handler.UpdateStatus)
	})
}
