package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/affipay/affipay/internal/apperrors"
	"github.com/affipay/affipay/internal/logger"
	"github.com/affipay/affipay/internal/service"
)

type Handler struct {
	ledgerService     service.LedgerService
	withdrawalService service.WithdrawalService
	batchService      service.BatchService
}

func NewHandler(
	ledgerService service.LedgerService,
	withdrawalService service.WithdrawalService,
	batchService service.BatchService,
) *Handler {
	return &Handler{
		ledgerService:     ledgerService,
		withdrawalService: withdrawalService,
		batchService:      batchService,
	}
}

func parseIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrValidation
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response json", zap.Error(err))
	}
}

// writeServiceError maps domain errors onto HTTP statuses. Anything
// unrecognized is a 500 and gets logged; the expected failures do not.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		http.Error(w, "insufficient balance", http.StatusPaymentRequired)
	case errors.Is(err, apperrors.ErrBelowMinimumPayout):
		http.Error(w, "amount below minimum payout", http.StatusUnprocessableEntity)
	case errors.Is(err, apperrors.ErrUnknownCurrency):
		http.Error(w, "unknown currency", http.StatusUnprocessableEntity)
	case errors.Is(err, apperrors.ErrDuplicateRequest):
		http.Error(w, "duplicate open request", http.StatusConflict)
	case errors.Is(err, apperrors.ErrStateConflict):
		http.Error(w, "conflicting state", http.StatusConflict)
	case errors.Is(err, apperrors.ErrEmptyBatch):
		http.Error(w, "batch has no pending items", http.StatusConflict)
	case errors.Is(err, apperrors.ErrBatchNotReprocessable):
		http.Error(w, "batch is not reprocessable", http.StatusConflict)
	case errors.Is(err, apperrors.ErrBatchNotDeletable):
		http.Error(w, "batch is not deletable", http.StatusConflict)
	case errors.Is(err, apperrors.ErrRetryLimitReached):
		http.Error(w, "retry limit reached", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("request failed", zap.Error(err))
	}
}
