package usecase

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestApplyCoupon(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		code     string
		expected float64
	}{
		{name: "earlybird takes 10 percent off", amount: 1000, code: "EARLYBIRD", expected: 900},
		{name: "welcome50 halves the amount", amount: 1000, code: "WELCOME50", expected: 500},
		{name: "save10 takes 10 percent off", amount: 1000, code: "SAVE10", expected: 900},
		{name: "unknown code charges full", amount: 1000, code: "BOGUS", expected: 1000},
		{name: "empty code charges full", amount: 250.5, code: "", expected: 250.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ApplyCoupon(tt.amount, tt.code), 1e-9)
		})
	}
}

func validBookingRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		VenueID:     1,
		SportID:     2,
		MemberID:    3,
		BookingDate: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
		Amount:      1000,
	}
}

func activeMember(id int64) *entity.Member {
	return &entity.Member{MemberID: id, Name: "Somchai", Status: entity.MemberStatusActive}
}

func TestCreateBooking_Success(t *testing.T) {
	repo, venues, members, bookings, _ := newFakeRepository()
	venues.findByIDFn = func(ctx context.Context, id int64) (*entity.Venue, error) {
		return &entity.Venue{VenueID: id, Name: "Court A"}, nil
	}
	members.findByIDFn = func(ctx context.Context, id int64) (*entity.Member, error) {
		return activeMember(id), nil
	}

	var persisted *entity.Booking
	bookings.createFn = func(ctx context.Context, booking *entity.Booking) error {
		booking.BookingID = 7
		persisted = booking
		return nil
	}

	svc := NewBookingService(repo, zap.NewNop())

	req := validBookingRequest()
	req.CouponCode = "EARLYBIRD"
	req.Status = "Pending"

	booking, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, persisted)

	assert.Equal(t, int64(7), booking.BookingID)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
	assert.InDelta(t, 900.0, booking.Amount, 1e-9)
	assert.Equal(t, "EARLYBIRD", booking.CouponCode)
}

func TestCreateBooking_UnknownCouponStoredVerbatim(t *testing.T) {
	repo, venues, members, bookings, _ := newFakeRepository()
	venues.findByIDFn = func(ctx context.Context, id int64) (*entity.Venue, error) {
		return &entity.Venue{VenueID: id}, nil
	}
	members.findByIDFn = func(ctx context.Context, id int64) (*entity.Member, error) {
		return activeMember(id), nil
	}
	bookings.createFn = func(ctx context.Context, booking *entity.Booking) error { return nil }

	svc := NewBookingService(repo, zap.NewNop())

	req := validBookingRequest()
	req.CouponCode = "NOTACODE"

	booking, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, booking.Amount, 1e-9)
	assert.Equal(t, "NOTACODE", booking.CouponCode)
}

func TestCreateBooking_VenueNotFound(t *testing.T) {
	repo, venues, _, _, _ := newFakeRepository()
	venues.findByIDFn = func(ctx context.Context, id int64) (*entity.Venue, error) {
		return nil, nil
	}

	svc := NewBookingService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), validBookingRequest())
	require.Error(t, err)
	assert.EqualError(t, err, "Venue not found")
}

func TestCreateBooking_MemberNotFound(t *testing.T) {
	repo, venues, members, _, _ := newFakeRepository()
	venues.findByIDFn = func(ctx context.Context, id int64) (*entity.Venue, error) {
		return &entity.Venue{VenueID: id}, nil
	}
	members.findByIDFn = func(ctx context.Context, id int64) (*entity.Member, error) {
		return nil, nil
	}

	svc := NewBookingService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), validBookingRequest())
	require.Error(t, err)
	assert.EqualError(t, err, "Member not found")
}

func TestCreateBooking_MemberInactive(t *testing.T) {
	repo, venues, members, _, _ := newFakeRepository()
	venues.findByIDFn = func(ctx context.Context, id int64) (*entity.Venue, error) {
		return &entity.Venue{VenueID: id}, nil
	}
	members.findByIDFn = func(ctx context.Context, id int64) (*entity.Member, error) {
		member := activeMember(id)
		member.Status = entity.MemberStatusInactive
		return member, nil
	}

	svc := NewBookingService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), validBookingRequest())
	require.Error(t, err)
	assert.EqualError(t, err, "Member is not active")
}

func TestCreateBooking_VenueAlreadyBooked(t *testing.T) {
	repo, venues, members, bookings, _ := newFakeRepository()
	venues.findByIDFn = func(ctx context.Context, id int64) (*entity.Venue, error) {
		return &entity.Venue{VenueID: id}, nil
	}
	members.findByIDFn = func(ctx context.Context, id int64) (*entity.Member, error) {
		return activeMember(id), nil
	}
	bookings.findConflictFn = func(ctx context.Context, venueID int64, bookingDate time.Time) (*entity.Booking, error) {
		return &entity.Booking{BookingID: 4, VenueID: venueID, BookingDate: bookingDate, Status: entity.BookingStatusConfirmed}, nil
	}

	created := false
	bookings.createFn = func(ctx context.Context, booking *entity.Booking) error {
		created = true
		return nil
	}

	svc := NewBookingService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), validBookingRequest())
	require.Error(t, err)
	assert.EqualError(t, err, "Venue is already booked at this time")
	assert.False(t, created)
}

func TestCreateBooking_ValidationFailure(t *testing.T) {
	repo, _, _, _, _ := newFakeRepository()
	svc := NewBookingService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), &request.CreateBookingRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestUpdateBookingStatus_Invalid(t *testing.T) {
	repo, _, _, _, _ := newFakeRepository()
	svc := NewBookingService(repo, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), 1, &request.UpdateBookingStatusRequest{Status: "Done"})
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid status")
}

func TestUpdateBookingStatus_NotFound(t *testing.T) {
	repo, _, _, bookings, _ := newFakeRepository()
	bookings.findByIDFn = func(ctx context.Context, id int64) (*entity.Booking, error) {
		return nil, nil
	}

	svc := NewBookingService(repo, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), 99, &request.UpdateBookingStatusRequest{Status: "Cancelled"})
	require.Error(t, err)
	assert.EqualError(t, err, "Booking not found")
}

func TestUpdateBookingStatus_Success(t *testing.T) {
	repo, _, _, bookings, _ := newFakeRepository()
	bookings.findByIDFn = func(ctx context.Context, id int64) (*entity.Booking, error) {
		return &entity.Booking{BookingID: id, Status: entity.BookingStatusConfirmed}, nil
	}

	var updatedID int64
	var updatedStatus entity.BookingStatus
	bookings.updateStatusFn = func(ctx context.Context, id int64, status entity.BookingStatus) error {
		updatedID = id
		updatedStatus = status
		return nil
	}

	svc := NewBookingService(repo, zap.NewNop())

	booking, err := svc.UpdateStatus(context.Background(), 5, &request.UpdateBookingStatusRequest{Status: "Completed"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), updatedID)
	assert.Equal(t, entity.BookingStatusCompleted, updatedStatus)
	assert.Equal(t, entity.BookingStatusCompleted, booking.Status)
}
