package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VenueHandler struct {
	service usecase.VenueService
	log     *zap.Logger
}

func NewVenueHandler(service usecase.VenueService, log *zap.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		log:     log.With(zap.String("handler", "venue")),
	}
}

// List handles GET /api/venues
func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	venues, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list venues")
		return
	}

	utils.ResponseSuccess(w, venues)
}

// Get handles GET /api/venues/{id}
func (h *VenueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseNotFound(w, "Venue not found")
		return
	}

	venue, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get venue")
		return
	}

	utils.ResponseSuccess(w, venue)
}

// Create handles POST /api/venues
func (h *VenueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	venue, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create venue")
		return
	}

	utils.ResponseCreated(w, venue)
}

// Update handles PUT /api/venues/{id}
func (h *VenueHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseNotFound(w, "Venue not found")
		return
	}

	var req request.UpdateVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	venue, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update venue")
		return
	}

	utils.ResponseSuccess(w, venue)
}

// Delete handles DELETE /api/venues/{id}
func (h *VenueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseNotFound(w, "Venue not found")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete venue")
		return
	}

	utils.ResponseSuccess(w, map[string]string{"message": "Venue deleted successfully"})
}
