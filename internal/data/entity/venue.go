package entity

type Venue struct {
	VenueID  int64  `db:"venue_id" json:"venue_id"`
	Name     string `db:"name" json:"name"`
	Location string `db:"location" json:"location"`
}

// VenueRevenue is the read model behind the revenue-by-venue report.
type VenueRevenue struct {
	VenueID      int64   `db:"venue_id" json:"venue_id"`
	VenueName    string  `db:"venue_name" json:"venue_name"`
	Location     string  `db:"location" json:"location"`
	TotalRevenue float64 `db:"total_revenue" json:"total_revenue"`
	BookingCount int64   `db:"booking_count" json:"booking_count"`
}
