package usecase

import (
	"venue-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Venue       VenueService
	Member      MemberService
	Booking     BookingService
	Transaction TransactionService
	Dashboard   DashboardService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Venue:       NewVenueService(repo.Venue, log),
		Member:      NewMemberService(repo.Member, log),
		Booking:     NewBookingService(repo, log),
		Transaction: NewTransactionService(repo, log),
		Dashboard:   NewDashboardService(repo, log),
	}
}
