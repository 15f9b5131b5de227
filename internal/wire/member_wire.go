package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMember(r chi.Router, handler *adaptor.MemberHandler) {
	r.Route("/api/members", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/", handler.Create)
		r.Get("/{id}", handler.Get)
		r.Put("/{id}/status", handler.UpdateStatus)
	})
}
