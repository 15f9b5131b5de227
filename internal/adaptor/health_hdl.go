package adaptor

import (
	"net/http"
	"time"

	"venue-booking/internal/dto/response"
	"venue-booking/pkg/database"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type HealthHandler struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHealthHandler(db database.PgxIface, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: log.With(zap.String("handler", "health")),
	}
}

// Check handles GET /health; the endpoint stays 200 even when the store is
// unreachable, reporting connectivity in the body.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	dbStatus := "Connected"
	if err := h.db.Ping(r.Context()); err != nil {
		h.log.Warn("Health check: database unreachable", zap.Error(err))
		dbStatus = "Disconnected"
	}

	utils.ResponseSuccess(w, response.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  dbStatus,
	})
}
