package http

import (
	"net/http"

	"rent-assist/domain"
	"rent-assist/service"
)

type EligibilityHandler struct {
	service *service.EligibilityService
}

func NewEligibilityHandler(service *service.EligibilityService) *EligibilityHandler {
	return &EligibilityHandler{service: service}
}

func (h *EligibilityHandler) RentAssistance(w http.ResponseWriter, r *http.Request) {
	var input domain.RentEligibilityInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.RentAssistance(input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *EligibilityHandler) BNPL(w http.ResponseWriter, r *http.Request) {
	var input domain.BNPLEligibilityInput
	if !decodeJSON(w, r, &input) {
		return
	}

	plan, err := h.service.BNPL(input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}
