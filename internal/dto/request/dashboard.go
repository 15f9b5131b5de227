package request

// StatsFilter narrows dashboard statistics. VenueID/SportID constrain
// bookings; Month+Year (both required together) bound the transaction window
// to that calendar month.
type StatsFilter struct {
	VenueID *int64
	SportID *int64
	Month   *int
	Year    *int
}

// ChartFilter narrows the revenue time series. Days is the trailing window
// length in calendar days ending today.
type ChartFilter struct {
	VenueID *int64
	SportID *int64
	Days    int
}
