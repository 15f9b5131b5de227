package usecase

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

// couponDiscounts is the fixed coupon table; unrecognized codes are stored
// verbatim and apply no discount.
var couponDiscounts = map[string]float64{
	"EARLYBIRD": 0.1,
	"WELCOME50": 0.5,
	"SAVE10":    0.1,
}

type BookingService interface {
	List(ctx context.Context, filter *request.BookingListFilter) ([]*entity.Booking, error)
	Get(ctx context.Context, id int64) (*entity.Booking, error)
	Create(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error)
	UpdateStatus(ctx context.Context, id int64, req *request.UpdateBookingStatusRequest) (*entity.Booking, error)
	RevenueByVenue(ctx context.Context) ([]*entity.VenueRevenue, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) List(ctx context.Context, filter *request.BookingListFilter) ([]*entity.Booking, error) {
	bookings, err := s.repo.Booking.FindAll(ctx, repository.BookingFilter{
		Status:    filter.Status,
		VenueID:   filter.VenueID,
		MemberID:  filter.MemberID,
		SportID:   filter.SportID,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) Get(ctx context.Context, id int64) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("Booking not found")
	}
	return booking, nil
}

// Create runs the admission checks in order; the first failure aborts with its
// reason. A passing request is priced and persisted as Confirmed regardless of
// the status the caller sent.
func (s *bookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	venue, err := s.repo.Venue.FindByID(ctx, req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if venue == nil {
		return nil, fmt.Errorf("Venue not found")
	}

	member, err := s.repo.Member.FindByID(ctx, req.MemberID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if member == nil {
		return nil, fmt.Errorf("Member not found")
	}
	if member.Status != entity.MemberStatusActive {
		return nil, fmt.Errorf("Member is not active")
	}

	conflict, err := s.repo.Booking.FindConflict(ctx, req.VenueID, req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if conflict != nil {
		return nil, fmt.Errorf("Venue is already booked at this time")
	}

	booking := &entity.Booking{
		VenueID:     req.VenueID,
		SportID:     req.SportID,
		MemberID:    req.MemberID,
		BookingDate: req.BookingDate,
		Amount:      ApplyCoupon(req.Amount, req.CouponCode),
		CouponCode:  req.CouponCode,
		Status:      entity.BookingStatusConfirmed,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("venue_id", req.VenueID),
			zap.Int64("member_id", req.MemberID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.BookingID),
		zap.Int64("venue_id", booking.VenueID),
		zap.Int64("member_id", booking.MemberID),
		zap.Float64("amount", booking.Amount),
		zap.String("coupon_code", booking.CouponCode),
	)

	return booking, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id int64, req *request.UpdateBookingStatusRequest) (*entity.Booking, error) {
	status := entity.BookingStatus(req.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("Invalid status")
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update booking %d status: %w", id, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("Booking not found")
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update booking %d status: %w", id, err)
	}

	booking.Status = status

	s.log.Info("Booking status updated",
		zap.Int64("booking_id", id),
		zap.String("status", string(status)),
	)

	return booking, nil
}

func (s *bookingService) RevenueByVenue(ctx context.Context) ([]*entity.VenueRevenue, error) {
	revenues, err := s.repo.Booking.RevenueByVenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("revenue by venue: %w", err)
	}
	return revenues, nil
}

// ApplyCoupon returns the charge after the fixed-table discount, or the amount
// unchanged for unknown codes.
func ApplyCoupon(amount float64, code string) float64 {
	if discount, ok := couponDiscounts[code]; ok {
		return amount * (1 - discount)
	}
	return amount
}
