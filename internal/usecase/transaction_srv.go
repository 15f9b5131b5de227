package usecase

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type TransactionService interface {
	List(ctx context.Context, filter *request.TransactionListFilter) ([]*response.TransactionResponse, error)
	Get(ctx context.Context, id int64) (*response.TransactionResponse, error)
	Create(ctx context.Context, req *request.CreateTransactionRequest) (*entity.Transaction, error)
	TotalRevenue(ctx context.Context) (*response.TotalRevenueResponse, error)
}

type transactionService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTransactionService(repo *repository.Repository, log *zap.Logger) TransactionService {
	return &transactionService{
		repo: repo,
		log:  log.With(zap.String("service", "transaction")),
	}
}

func (s *transactionService) List(ctx context.Context, filter *request.TransactionListFilter) ([]*response.TransactionResponse, error) {
	txns, err := s.repo.Transaction.FindAll(ctx, repository.TransactionFilter{
		Status:    filter.Status,
		Type:      filter.Type,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	responses := make([]*response.TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = response.TransactionToResponse(txn)
	}
	return responses, nil
}

func (s *transactionService) Get(ctx context.Context, id int64) (*response.TransactionResponse, error) {
	txn, err := s.repo.Transaction.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get transaction %d: %w", id, err)
	}
	if txn == nil {
		return nil, fmt.Errorf("Transaction not found")
	}
	return response.TransactionToResponse(txn), nil
}

func (s *transactionService) Create(ctx context.Context, req *request.CreateTransactionRequest) (*entity.Transaction, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create transaction validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.repo.Booking.FindByID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("Booking not found")
	}

	status := entity.TransactionStatus(req.Status)
	if status == "" {
		status = entity.TransactionStatusSuccess
	}

	txnDate := time.Now()
	if req.TransactionDate != nil {
		txnDate = *req.TransactionDate
	}

	txn := &entity.Transaction{
		BookingID:       req.BookingID,
		Type:            entity.TransactionType(req.Type),
		Amount:          req.Amount,
		Status:          status,
		TransactionDate: txnDate,
	}

	if err := s.repo.Transaction.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	s.log.Info("Transaction created",
		zap.Int64("transaction_id", txn.TransactionID),
		zap.Int64("booking_id", txn.BookingID),
		zap.String("type", string(txn.Type)),
		zap.Float64("amount", txn.Amount),
	)

	return txn, nil
}

func (s *transactionService) TotalRevenue(ctx context.Context) (*response.TotalRevenueResponse, error) {
	total, count, err := s.repo.Transaction.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}

	return &response.TotalRevenueResponse{
		TotalRevenue:     total,
		TransactionCount: count,
	}, nil
}
