package repository

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingFilter narrows booking queries; zero values mean "no constraint".
type BookingFilter struct {
	Status    string
	VenueID   *int64
	MemberID  *int64
	SportID   *int64
	StartDate *time.Time
	EndDate   *time.Time
}

type BookingRepository interface {
	FindAll(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error)
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	FindConflict(ctx context.Context, venueID int64, bookingDate time.Time) (*entity.Booking, error)
	Create(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) error

	// Dashboard queries
	Count(ctx context.Context, filter BookingFilter) (int64, error)
	CountWithCoupon(ctx context.Context, filter BookingFilter) (int64, error)
	FindIDs(ctx context.Context, filter BookingFilter) ([]int64, error)
	MemberBookingCounts(ctx context.Context, filter BookingFilter) (members int64, repeatMembers int64, err error)
	DistinctSportIDs(ctx context.Context) ([]int64, error)
	RevenueByVenue(ctx context.Context) ([]*entity.VenueRevenue, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// filterClause covers every BookingFilter field; callers bind the six filter
// arguments in this order: status, venue_id, member_id, sport_id, start, end.
const bookingFilterClause = `
	($1 = '' OR status = $1)
	AND ($2::bigint IS NULL OR venue_id = $2)
	AND ($3::bigint IS NULL OR member_id = $3)
	AND ($4::bigint IS NULL OR sport_id = $4)
	AND ($5::timestamptz IS NULL OR booking_date >= $5)
	AND ($6::timestamptz IS NULL OR booking_date <= $6)
`

func (f BookingFilter) args() []any {
	return []any{f.Status, f.VenueID, f.MemberID, f.SportID, f.StartDate, f.EndDate}
}

func (r *bookingRepository) FindAll(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error) {
	query := `
		SELECT booking_id, venue_id, sport_id, member_id, booking_date, amount, coupon_code, status
		FROM bookings
		WHERE ` + bookingFilterClause + `
		ORDER BY booking_date DESC
	`

	rows, err := r.db.Query(ctx, query, filter.args()...)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows, r.log)
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `
		SELECT booking_id, venue_id, sport_id, member_id, booking_date, amount, coupon_code, status
		FROM bookings
		WHERE booking_id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.BookingID,
		&booking.VenueID,
		&booking.SportID,
		&booking.MemberID,
		&booking.BookingDate,
		&booking.Amount,
		&booking.CouponCode,
		&booking.Status,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	return &booking, nil
}

// FindConflict looks for a Confirmed or Completed booking holding the venue at
// the exact same timestamp. Collisions a minute apart pass.
func (r *bookingRepository) FindConflict(ctx context.Context, venueID int64, bookingDate time.Time) (*entity.Booking, error) {
	query := `
		SELECT booking_id, venue_id, sport_id, member_id, booking_date, amount, coupon_code, status
		FROM bookings
		WHERE venue_id = $1
		  AND booking_date = $2
		  AND status IN ('Confirmed', 'Completed')
		LIMIT 1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, venueID, bookingDate).Scan(
		&booking.BookingID,
		&booking.VenueID,
		&booking.SportID,
		&booking.MemberID,
		&booking.BookingDate,
		&booking.Amount,
		&booking.CouponCode,
		&booking.Status,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to check booking conflict",
			zap.Error(err),
			zap.Int64("venue_id", venueID),
			zap.Time("booking_date", bookingDate),
		)
		return nil, fmt.Errorf("check booking conflict for venue %d: %w", venueID, err)
	}

	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (booking_id, venue_id, sport_id, member_id, booking_date, amount, coupon_code, status)
		VALUES ((SELECT COALESCE(MAX(booking_id), 0) + 1 FROM bookings), $1, $2, $3, $4, $5, $6, $7)
		RETURNING booking_id
	`

	err := r.db.QueryRow(ctx, query,
		booking.VenueID,
		booking.SportID,
		booking.MemberID,
		booking.BookingDate,
		booking.Amount,
		booking.CouponCode,
		booking.Status,
	).Scan(&booking.BookingID)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("venue_id", booking.VenueID),
			zap.Int64("member_id", booking.MemberID),
		)
		return fmt.Errorf("create booking for venue %d: %w", booking.VenueID, err)
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2 WHERE booking_id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.Int64("booking_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %d status to %s: %w", id, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d not found", id)
	}

	return nil
}

func (r *bookingRepository) Count(ctx context.Context, filter BookingFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE ` + bookingFilterClause

	var count int64
	if err := r.db.QueryRow(ctx, query, filter.args()...).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) CountWithCoupon(ctx context.Context, filter BookingFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE coupon_code <> '' AND ` + bookingFilterClause

	var count int64
	if err := r.db.QueryRow(ctx, query, filter.args()...).Scan(&count); err != nil {
		r.log.Error("Failed to count coupon bookings", zap.Error(err))
		return 0, fmt.Errorf("count coupon bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) FindIDs(ctx context.Context, filter BookingFilter) ([]int64, error) {
	query := `SELECT booking_id FROM bookings WHERE ` + bookingFilterClause

	rows, err := r.db.Query(ctx, query, filter.args()...)
	if err != nil {
		r.log.Error("Failed to list booking IDs", zap.Error(err))
		return nil, fmt.Errorf("list booking IDs: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			r.log.Error("Failed to scan booking ID", zap.Error(err))
			return nil, fmt.Errorf("scan booking ID: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// MemberBookingCounts returns how many distinct members hold at least one
// filtered booking, and how many of those hold more than one.
func (r *bookingRepository) MemberBookingCounts(ctx context.Context, filter BookingFilter) (int64, int64, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE booking_count > 1)
		FROM (
			SELECT member_id, COUNT(*) AS booking_count
			FROM bookings
			WHERE ` + bookingFilterClause + `
			GROUP BY member_id
		) per_member
	`

	var members, repeatMembers int64
	if err := r.db.QueryRow(ctx, query, filter.args()...).Scan(&members, &repeatMembers); err != nil {
		r.log.Error("Failed to count member bookings", zap.Error(err))
		return 0, 0, fmt.Errorf("count member bookings: %w", err)
	}

	return members, repeatMembers, nil
}

func (r *bookingRepository) DistinctSportIDs(ctx context.Context) ([]int64, error) {
	query := `SELECT DISTINCT sport_id FROM bookings ORDER BY sport_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list sport IDs", zap.Error(err))
		return nil, fmt.Errorf("list sport IDs: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			r.log.Error("Failed to scan sport ID", zap.Error(err))
			return nil, fmt.Errorf("scan sport ID: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *bookingRepository) RevenueByVenue(ctx context.Context) ([]*entity.VenueRevenue, error) {
	query := `
		SELECT b.venue_id, v.name, v.location, SUM(b.amount), COUNT(*)
		FROM bookings b
		JOIN venues v ON v.venue_id = b.venue_id
		WHERE b.status IN ('Confirmed', 'Completed')
		GROUP BY b.venue_id, v.name, v.location
		ORDER BY SUM(b.amount) DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to aggregate revenue by venue", zap.Error(err))
		return nil, fmt.Errorf("aggregate revenue by venue: %w", err)
	}
	defer rows.Close()

	var revenues []*entity.VenueRevenue
	for rows.Next() {
		var rev entity.VenueRevenue
		err := rows.Scan(&rev.VenueID, &rev.VenueName, &rev.Location, &rev.TotalRevenue, &rev.BookingCount)
		if err != nil {
			r.log.Error("Failed to scan venue revenue row", zap.Error(err))
			return nil, fmt.Errorf("scan venue revenue row: %w", err)
		}
		revenues = append(revenues, &rev)
	}

	return revenues, nil
}

func scanBookings(rows pgx.Rows, log *zap.Logger) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.BookingID,
			&booking.VenueID,
			&booking.SportID,
			&booking.MemberID,
			&booking.BookingDate,
			&booking.Amount,
			&booking.CouponCode,
			&booking.Status,
		)
		if err != nil {
			log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}
