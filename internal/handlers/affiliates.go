package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/affipay/affipay/internal/service"
)

func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	affiliateID, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid affiliate id", http.StatusBadRequest)
		return
	}

	balance, err := h.ledgerService.AvailableBalance(r.Context(), affiliateID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, balance)
}

func (h *Handler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	affiliateID, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid affiliate id", http.StatusBadRequest)
		return
	}

	var input service.CreateWithdrawalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	input.UserID = affiliateID

	request, err := h.withdrawalService.CreateRequest(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, request)
}
