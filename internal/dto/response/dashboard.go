package response

import "venue-booking/internal/data/entity"

// StatsResponse mirrors the dashboard widget contract: revenue figures are
// 2-decimal strings, rates are numbers rounded to 2 decimals.
type StatsResponse struct {
	ActiveMembers       int64   `json:"active_members"`
	InactiveMembers     int64   `json:"inactive_members"`
	TrialConversionRate float64 `json:"trial_conversion_rate"`
	CoachingRevenue     string  `json:"coaching_revenue"`
	Bookings            int64   `json:"bookings"`
	ConfirmedBookings   int64   `json:"confirmed_bookings"`
	BookingRevenue      string  `json:"booking_revenue"`
	SlotsUtilization    float64 `json:"slots_utilization"`
	CouponRedemption    int64   `json:"coupon_redemption"`
	RepeatBooking       float64 `json:"repeat_booking"`
	TotalRevenue        string  `json:"total_revenue"`
	RefundsDisputes     int64   `json:"refunds_disputes"`
}

// ChartPoint is one day of the revenue time series.
type ChartPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// VenueOption adds the id/value/label fields the filter dropdown expects.
type VenueOption struct {
	entity.Venue
	ID    int64  `json:"id"`
	Value int64  `json:"value"`
	Label string `json:"label"`
}

type SportOption struct {
	ID    int64  `json:"id"`
	Value int64  `json:"value"`
	Name  string `json:"name"`
	Label string `json:"label"`
}
