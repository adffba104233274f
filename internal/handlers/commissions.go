package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/affipay/affipay/internal/export"
	"github.com/affipay/affipay/internal/logger"
)

func (h *Handler) ListCommissions(w http.ResponseWriter, r *http.Request) {
	commissions, err := h.ledgerService.ListCommissions(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if len(commissions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, commissions)
}

func (h *Handler) CommissionSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.ledgerService.Summary(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) ApproveCommission(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid commission id", http.StatusBadRequest)
		return
	}

	if err := h.ledgerService.Approve(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) RejectCommission(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid commission id", http.StatusBadRequest)
		return
	}

	if err := h.ledgerService.Reject(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) ExportCommissions(w http.ResponseWriter, r *http.Request) {
	rows, err := h.ledgerService.ReportRows(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="commissions.csv"`)
	if err := export.WriteCommissionReport(w, rows); err != nil {
		logger.Log.Error("failed to write commission csv", zap.Error(err))
	}
}
