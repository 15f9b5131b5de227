package wire

import (
	"net/http"

	"venue-booking/internal/adaptor"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/database"
	"venue-booking/pkg/middleware"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(repo *repository.Repository, db database.PgxIface, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, db, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireVenue(r, handler.Venue)
	wireMember(r, handler.Member)
	wireBooking(r, handler.Booking)
	wireTransaction(r, handler.Transaction)
	wireDashboard(r, handler.Dashboard)

	// Health check endpoint
	r.Get("/health", handler.Health.Check)

	// The dashboard frontend expects 404 with a message body on anything
	// unrecognized, including bad methods.
	notFound := func(w http.ResponseWriter, _ *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}
