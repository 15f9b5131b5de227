package adaptor

import (
	"net/http"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// Stats handles GET /api/dashboard/stats
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := &request.StatsFilter{
		VenueID: utils.ParseInt64Ptr(query.Get("venue_id")),
		SportID: utils.ParseInt64Ptr(query.Get("sport_id")),
		Month:   utils.ParseIntPtr(query.Get("month")),
		Year:    utils.ParseIntPtr(query.Get("year")),
	}

	stats, err := h.service.Stats(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "dashboard stats")
		return
	}

	utils.ResponseSuccess(w, stats)
}

// RevenueChart handles GET /api/dashboard/revenue-chart
func (h *DashboardHandler) RevenueChart(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := &request.ChartFilter{
		VenueID: utils.ParseInt64Ptr(query.Get("venue_id")),
		SportID: utils.ParseInt64Ptr(query.Get("sport_id")),
		Days:    utils.ParseInt(query.Get("days"), 30),
	}

	chart, err := h.service.RevenueChart(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "revenue chart")
		return
	}

	utils.ResponseSuccess(w, chart)
}

// VenueOptions handles GET /api/dashboard/venues
func (h *DashboardHandler) VenueOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.VenueOptions(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "dashboard venues")
		return
	}

	utils.ResponseSuccess(w, options)
}

// SportOptions handles GET /api/dashboard/sports
func (h *DashboardHandler) SportOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.SportOptions(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "dashboard sports")
		return
	}

	utils.ResponseSuccess(w, options)
}
