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

// TransactionFilter narrows transaction listings; zero values mean "no constraint".
type TransactionFilter struct {
	Status    string
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
}

// RevenueFilter selects the Success transactions that count toward a revenue
// figure. When LimitToBookings is set, only transactions referencing one of
// BookingIDs are summed; an empty id set then means zero revenue.
type RevenueFilter struct {
	Types           []entity.TransactionType
	StartDate       *time.Time
	EndDate         *time.Time
	BookingIDs      []int64
	LimitToBookings bool
}

type TransactionRepository interface {
	FindAll(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionDetail, error)
	FindByID(ctx context.Context, id int64) (*entity.TransactionDetail, error)
	Create(ctx context.Context, txn *entity.Transaction) error

	// Dashboard queries
	SumAmount(ctx context.Context, filter RevenueFilter) (float64, error)
	CountByStatuses(ctx context.Context, statuses []entity.TransactionStatus, start, end *time.Time) (int64, error)
	RevenueByDay(ctx context.Context, filter RevenueFilter) (map[string]float64, error)
	TotalRevenue(ctx context.Context) (total float64, count int64, err error)
}

type transactionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransactionRepository(db database.PgxIface, log *zap.Logger) TransactionRepository {
	return &transactionRepository{
		db:  db,
		log: log.With(zap.String("repository", "transaction")),
	}
}

const transactionSelect = `
	SELECT t.transaction_id, t.booking_id, t.type, t.amount, t.status, t.transaction_date,
	       b.booking_date, b.amount, b.status
	FROM transactions t
	LEFT JOIN bookings b ON b.booking_id = t.booking_id
`

func (r *transactionRepository) FindAll(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionDetail, error) {
	query := transactionSelect + `
		WHERE ($1 = '' OR t.status = $1)
		  AND ($2 = '' OR t.type = $2)
		  AND ($3::timestamptz IS NULL OR t.transaction_date >= $3)
		  AND ($4::timestamptz IS NULL OR t.transaction_date <= $4)
		ORDER BY t.transaction_date DESC
	`

	rows, err := r.db.Query(ctx, query, filter.Status, filter.Type, filter.StartDate, filter.EndDate)
	if err != nil {
		r.log.Error("Failed to list transactions", zap.Error(err))
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []*entity.TransactionDetail
	for rows.Next() {
		txn, err := scanTransactionDetail(rows)
		if err != nil {
			r.log.Error("Failed to scan transaction row", zap.Error(err))
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}

	return txns, nil
}

func (r *transactionRepository) FindByID(ctx context.Context, id int64) (*entity.TransactionDetail, error) {
	query := transactionSelect + ` WHERE t.transaction_id = $1`

	txn, err := scanTransactionDetail(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find transaction by ID",
			zap.Error(err),
			zap.Int64("transaction_id", id),
		)
		return nil, fmt.Errorf("find transaction by ID %d: %w", id, err)
	}

	return txn, nil
}

// Create assigns the next sequential transaction_id; the sequence starts at 101.
func (r *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, booking_id, type, amount, status, transaction_date)
		VALUES ((SELECT COALESCE(MAX(transaction_id), 100) + 1 FROM transactions), $1, $2, $3, $4, $5)
		RETURNING transaction_id
	`

	err := r.db.QueryRow(ctx, query,
		txn.BookingID,
		txn.Type,
		txn.Amount,
		txn.Status,
		txn.TransactionDate,
	).Scan(&txn.TransactionID)

	if err != nil {
		r.log.Error("Failed to create transaction",
			zap.Error(err),
			zap.Int64("booking_id", txn.BookingID),
			zap.String("type", string(txn.Type)),
		)
		return fmt.Errorf("create transaction for booking %d: %w", txn.BookingID, err)
	}

	return nil
}

func (r *transactionRepository) SumAmount(ctx context.Context, filter RevenueFilter) (float64, error) {
	if filter.LimitToBookings && len(filter.BookingIDs) == 0 {
		return 0, nil
	}

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE status = 'Success'
		  AND type = ANY($1)
		  AND ($2::timestamptz IS NULL OR transaction_date >= $2)
		  AND ($3::timestamptz IS NULL OR transaction_date <= $3)
		  AND (NOT $4::boolean OR booking_id = ANY($5))
	`

	var total float64
	err := r.db.QueryRow(ctx, query,
		typeStrings(filter.Types),
		filter.StartDate,
		filter.EndDate,
		filter.LimitToBookings,
		filter.BookingIDs,
	).Scan(&total)

	if err != nil {
		r.log.Error("Failed to sum transaction amounts", zap.Error(err))
		return 0, fmt.Errorf("sum transaction amounts: %w", err)
	}

	return total, nil
}

func (r *transactionRepository) CountByStatuses(ctx context.Context, statuses []entity.TransactionStatus, start, end *time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM transactions
		WHERE status = ANY($1)
		  AND ($2::timestamptz IS NULL OR transaction_date >= $2)
		  AND ($3::timestamptz IS NULL OR transaction_date <= $3)
	`

	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, values, start, end).Scan(&count); err != nil {
		r.log.Error("Failed to count transactions by status", zap.Error(err))
		return 0, fmt.Errorf("count transactions by status: %w", err)
	}

	return count, nil
}

// RevenueByDay groups Success revenue by UTC calendar day, keyed YYYY-MM-DD.
// Days with no transactions are absent from the map.
func (r *transactionRepository) RevenueByDay(ctx context.Context, filter RevenueFilter) (map[string]float64, error) {
	if filter.LimitToBookings && len(filter.BookingIDs) == 0 {
		return map[string]float64{}, nil
	}

	query := `
		SELECT to_char(transaction_date AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, SUM(amount)
		FROM transactions
		WHERE status = 'Success'
		  AND type = ANY($1)
		  AND ($2::timestamptz IS NULL OR transaction_date >= $2)
		  AND ($3::timestamptz IS NULL OR transaction_date <= $3)
		  AND (NOT $4::boolean OR booking_id = ANY($5))
		GROUP BY day
	`

	rows, err := r.db.Query(ctx, query,
		typeStrings(filter.Types),
		filter.StartDate,
		filter.EndDate,
		filter.LimitToBookings,
		filter.BookingIDs,
	)
	if err != nil {
		r.log.Error("Failed to aggregate revenue by day", zap.Error(err))
		return nil, fmt.Errorf("aggregate revenue by day: %w", err)
	}
	defer rows.Close()

	revenue := make(map[string]float64)
	for rows.Next() {
		var day string
		var amount float64
		if err := rows.Scan(&day, &amount); err != nil {
			r.log.Error("Failed to scan daily revenue row", zap.Error(err))
			return nil, fmt.Errorf("scan daily revenue row: %w", err)
		}
		revenue[day] = amount
	}

	return revenue, nil
}

func (r *transactionRepository) TotalRevenue(ctx context.Context) (float64, int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0), COUNT(*)
		FROM transactions
		WHERE status = 'Success' AND type IN ('Booking', 'Coaching')
	`

	var total float64
	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&total, &count); err != nil {
		r.log.Error("Failed to compute total revenue", zap.Error(err))
		return 0, 0, fmt.Errorf("compute total revenue: %w", err)
	}

	return total, count, nil
}

func scanTransactionDetail(row pgx.Row) (*entity.TransactionDetail, error) {
	var txn entity.TransactionDetail
	err := row.Scan(
		&txn.TransactionID,
		&txn.BookingID,
		&txn.Type,
		&txn.Amount,
		&txn.Status,
		&txn.TransactionDate,
		&txn.BookingDate,
		&txn.BookingAmount,
		&txn.BookingStatus,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func typeStrings(types []entity.TransactionType) []string {
	values := make([]string, len(types))
	for i, t := range types {
		values[i] = string(t)
	}
	return values
}
