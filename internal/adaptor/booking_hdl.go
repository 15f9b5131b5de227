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

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// List handles GET /api/bookings
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := &request.BookingListFilter{
		Status:    query.Get("status"),
		VenueID:   utils.ParseInt64Ptr(query.Get("venue_id")),
		MemberID:  utils.ParseInt64Ptr(query.Get("member_id")),
		SportID:   utils.ParseInt64Ptr(query.Get("sport_id")),
		StartDate: utils.ParseTimePtr(query.Get("start_date")),
		EndDate:   utils.ParseTimePtr(query.Get("end_date")),
	}

	bookings, err := h.service.List(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// Get handles GET /api/bookings/{id}
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseNotFound(w, "Booking not found")
		return
	}

	booking, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	booking, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, booking)
}

// UpdateStatus handles PUT /api/bookings/{id}/status
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseNotFound(w, "Booking not found")
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// RevenueByVenue handles GET /api/bookings/revenue/venue
func (h *BookingHandler) RevenueByVenue(w http.ResponseWriter, r *http.Request) {
	revenues, err := h.service.RevenueByVenue(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "revenue by venue")
		return
	}

	utils.ResponseSuccess(w, revenues)
}
