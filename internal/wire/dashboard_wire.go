package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDashboard(r chi.Router, handler *adaptor.DashboardHandler) {
	r.Route("/api/dashboard", func(r chi.Router) {
		r.Get("/stats", handler.Stats)
		r.Get("/revenue-chart", handler.RevenueChart)
		r.Get("/venues", handler.VenueOptions)
		r.Get("/sports", handler.SportOptions)
	})
}
