package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

// BookingSummary is the slice of the referenced booking carried on a
// transaction row.
type BookingSummary struct {
	BookingDate time.Time            `json:"booking_date"`
	Amount      float64              `json:"amount"`
	Status      entity.BookingStatus `json:"status"`
}

type TransactionResponse struct {
	TransactionID   int64                    `json:"transaction_id"`
	BookingID       int64                    `json:"booking_id"`
	Type            entity.TransactionType   `json:"type"`
	Amount          float64                  `json:"amount"`
	Status          entity.TransactionStatus `json:"status"`
	TransactionDate time.Time                `json:"transaction_date"`
	Booking         *BookingSummary          `json:"booking,omitempty"`
}

func TransactionToResponse(txn *entity.TransactionDetail) *TransactionResponse {
	resp := &TransactionResponse{
		TransactionID:   txn.TransactionID,
		BookingID:       txn.BookingID,
		Type:            txn.Type,
		Amount:          txn.Amount,
		Status:          txn.Status,
		TransactionDate: txn.TransactionDate,
	}

	if txn.BookingDate != nil && txn.BookingAmount != nil && txn.BookingStatus != nil {
		resp.Booking = &BookingSummary{
			BookingDate: *txn.BookingDate,
			Amount:      *txn.BookingAmount,
			Status:      *txn.BookingStatus,
		}
	}

	return resp
}

type TotalRevenueResponse struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TransactionCount int64   `json:"transaction_count"`
}
