package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/affipay/affipay/internal/models"
)

// RecordSaleEvent ingests an upstream payment notification and records the
// resulting commission. Redelivered events get the already-recorded row.
func (h *Handler) RecordSaleEvent(w http.ResponseWriter, r *http.Request) {
	var event models.SaleEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	commission, err := h.ledgerService.RecordCommission(r.Context(), event)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, commission)
}
