package adaptor

import (
	"net/http"
	"strings"

	"venue-booking/internal/usecase"
	"venue-booking/pkg/database"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Venue       *VenueHandler
	Member      *MemberHandler
	Booking     *BookingHandler
	Transaction *TransactionHandler
	Dashboard   *DashboardHandler
	Health      *HealthHandler
}

func NewHandler(service *usecase.Service, db database.PgxIface, log *zap.Logger) *Handler {
	return &Handler{
		Venue:       NewVenueHandler(service.Venue, log),
		Member:      NewMemberHandler(service.Member, log),
		Booking:     NewBookingHandler(service.Booking, log),
		Transaction: NewTransactionHandler(service.Transaction, log),
		Dashboard:   NewDashboardHandler(service.Dashboard, log),
		Health:      NewHealthHandler(db, log),
	}
}

// handleServiceError routes service errors to HTTP status codes by message
// class: missing entities are 404, admission/validation failures are 400,
// anything else is a masked 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()
	lower := strings.ToLower(errMsg)

	switch {
	case strings.Contains(lower, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(lower, "validation failed"),
		strings.Contains(lower, "invalid"),
		strings.Contains(lower, "not active"),
		strings.Contains(lower, "already booked"):
		log.Warn(operation+" failed - rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
