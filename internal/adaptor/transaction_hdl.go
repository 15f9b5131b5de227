package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	service usecase.TransactionService
	log     *zap.Logger
}

func NewTransactionHandler(service usecase.TransactionService, log *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: service,
		log:     log.With(zap.String("handler", "transaction")),
	}
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := &request.TransactionListFilter{
		Status:    query.Get("status"),
		Type:      query.Get("type"),
		StartDate: utils.ParseTimePtr(query.Get("start_date")),
		EndDate:   utils.ParseTimePtr(query.Get("end_date")),
	}

	txns, err := h.service.List(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "list transactions")
		return
	}

	utils.ResponseSuccess(w, txns)
}

// Get handles GET /api/transactions/{id}
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseNotFound(w, "Transaction not found")
		return
	}

	txn, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get transaction")
		return
	}

	utils.ResponseSuccess(w, txn)
}

// Create handles POST /api/transactions
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	txn, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create transaction")
		return
	}

	utils.ResponseCreated(w, txn)
}

// TotalRevenue handles GET /api/transactions/revenue/total
func (h *TransactionHandler) TotalRevenue(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.TotalRevenue(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "total revenue")
		return
	}

	utils.ResponseSuccess(w, total)
}
