package http

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"rent-assist/domain"
	"rent-assist/export"
	"rent-assist/service"
)

type LoanHandler struct {
	service *service.LoanService
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.CalculateLoan(input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *LoanHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var input domain.ScheduleInput
	if !decodeJSON(w, r, &input) {
		return
	}

	record, err := h.service.GenerateSchedule(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *LoanHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "id must be a UUID", http.StatusBadRequest)
		return
	}

	record, err := h.service.GetSchedule(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *LoanHandler) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	var input domain.DiscountInput
	if !decodeJSON(w, r, &input) {
		return
	}

	schedule, err := h.service.ApplyDiscount(input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

func (h *LoanHandler) ApplyBonus(w http.ResponseWriter, r *http.Request) {
	var input domain.BonusInput
	if !decodeJSON(w, r, &input) {
		return
	}

	schedule, err := h.service.ApplyBonus(input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

// ExportSchedule returns a stored schedule as an xlsx download.
func (h *LoanHandler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "id must be a UUID", http.StatusBadRequest)
		return
	}

	record, err := h.service.GetSchedule(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteScheduleXLSX(&buf, record.Result); err != nil {
		slog.Error("error exporting schedule", "id", id, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="schedule-`+id.String()+`.xlsx"`)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("error writing export", "id", id, "error", err)
	}
}
