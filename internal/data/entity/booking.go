package entity

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	BookingID   int64         `db:"booking_id" json:"booking_id"`
	VenueID     int64         `db:"venue_id" json:"venue_id"`
	SportID     int64         `db:"sport_id" json:"sport_id"`
	MemberID    int64         `db:"member_id" json:"member_id"`
	BookingDate time.Time     `db:"booking_date" json:"booking_date"`
	Amount      float64       `db:"amount" json:"amount"`
	CouponCode  string        `db:"coupon_code" json:"coupon_code"`
	Status      BookingStatus `db:"status" json:"status"`
}
