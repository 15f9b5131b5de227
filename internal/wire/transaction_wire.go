package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTransaction(r chi.Router, handler *adaptor.TransactionHandler) {
	r.Route("/api/transactions", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/", handler.Create)
		r.Get("/revenue/total", handler.TotalRevenue)
		r.Get("/{id}", handler.Get)
	})
}
