package request

import "time"

type CreateBookingRequest struct {
	VenueID     int64     `json:"venue_id" validate:"required"`
	SportID     int64     `json:"sport_id" validate:"required"`
	MemberID    int64     `json:"member_id" validate:"required"`
	BookingDate time.Time `json:"booking_date" validate:"required"`
	Amount      float64   `json:"amount" validate:"gte=0"`
	CouponCode  string    `json:"coupon_code"`
	// Status is accepted but ignored: admission always persists Confirmed.
	Status string `json:"status,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// BookingListFilter collects the query-string filters on GET /api/bookings.
type BookingListFilter struct {
	Status    string
	VenueID   *int64
	MemberID  *int64
	SportID   *int64
	StartDate *time.Time
	EndDate   *time.Time
}
