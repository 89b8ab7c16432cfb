package http

import (
	"net/http"

	"cloud.google.com/go/civil"

	"rent-assist/domain"
	"rent-assist/service"
)

type FeeHandler struct {
	service *service.FeeService
}

func NewFeeHandler(service *service.FeeService) *FeeHandler {
	return &FeeHandler{service: service}
}

func (h *FeeHandler) InitialPayment(w http.ResponseWriter, r *http.Request) {
	h.feeBreakdown(w, r, h.service.InitialPayment)
}

func (h *FeeHandler) DocumentReviewFee(w http.ResponseWriter, r *http.Request) {
	h.feeBreakdown(w, r, h.service.DocumentReviewFee)
}

func (h *FeeHandler) DepositAndInterest(w http.ResponseWriter, r *http.Request) {
	h.feeBreakdown(w, r, h.service.DepositAndInterest)
}

func (h *FeeHandler) feeBreakdown(
	w http.ResponseWriter,
	r *http.Request,
	calculate func(domain.FeeInput) (domain.FeeBreakdown, error),
) {
	var input domain.FeeInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := calculate(input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *FeeHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var input domain.QuoteInput
	if !decodeJSON(w, r, &input) {
		return
	}

	quote, err := h.service.Quote(input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *FeeHandler) LateFee(w http.ResponseWriter, r *http.Request) {
	var input domain.LateFeeInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.LateFee(input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *FeeHandler) ProratedRent(w http.ResponseWriter, r *http.Request) {
	var input domain.ProrationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	prorated, err := h.service.ProratedRent(input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"proratedRent": prorated,
		"formatted":    service.FormatCurrency(prorated),
	})
}

func (h *FeeHandler) FirstPaymentDate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		LandlordPaymentDate civil.Date `json:"landlordPaymentDate"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	date, err := h.service.FirstPaymentDate(input.LandlordPaymentDate)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"firstPaymentDate":  date,
		"requiresProration": service.RequiresProration(input.LandlordPaymentDate),
	})
}
