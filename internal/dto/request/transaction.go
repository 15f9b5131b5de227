package request

import "time"

type CreateTransactionRequest struct {
	BookingID       int64      `json:"booking_id" validate:"required"`
	Type            string     `json:"type" validate:"required,oneof=Booking Coaching Refund"`
	Amount          float64    `json:"amount" validate:"gte=0"`
	Status          string     `json:"status" validate:"omitempty,oneof=Success Dispute Refunded Failed"`
	TransactionDate *time.Time `json:"transaction_date,omitempty"`
}

// TransactionListFilter collects the query-string filters on GET /api/transactions.
type TransactionListFilter struct {
	Status    string
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
}
