package entity

import "time"

type TransactionType string

const (
	TransactionTypeBooking  TransactionType = "Booking"
	TransactionTypeCoaching TransactionType = "Coaching"
	TransactionTypeRefund   TransactionType = "Refund"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeBooking, TransactionTypeCoaching, TransactionTypeRefund:
		return true
	}
	return false
}

type TransactionStatus string

const (
	TransactionStatusSuccess  TransactionStatus = "Success"
	TransactionStatusDispute  TransactionStatus = "Dispute"
	TransactionStatusRefunded TransactionStatus = "Refunded"
	TransactionStatusFailed   TransactionStatus = "Failed"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusSuccess, TransactionStatusDispute, TransactionStatusRefunded, TransactionStatusFailed:
		return true
	}
	return false
}

type Transaction struct {
	TransactionID   int64             `db:"transaction_id" json:"transaction_id"`
	BookingID       int64             `db:"booking_id" json:"booking_id"`
	Type            TransactionType   `db:"type" json:"type"`
	Amount          float64           `db:"amount" json:"amount"`
	Status          TransactionStatus `db:"status" json:"status"`
	TransactionDate time.Time         `db:"transaction_date" json:"transaction_date"`
}

// TransactionDetail carries the referenced booking's key fields alongside the
// transaction, filled by a join in the repository.
type TransactionDetail struct {
	Transaction
	BookingDate   *time.Time
	BookingAmount *float64
	BookingStatus *BookingStatus
}
