package repository

import (
	"venue-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Venue       VenueRepository
	Member      MemberRepository
	Booking     BookingRepository
	Transaction TransactionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Venue:       NewVenueRepository(db, log),
		Member:      NewMemberRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		Transaction: NewTransactionRepository(db, log),
	}
}
