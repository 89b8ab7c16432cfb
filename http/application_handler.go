package http

import (
	"net/http"

	"github.com/google/uuid"

	"rent-assist/domain"
	"rent-assist/service"
)

type ApplicationHandler struct {
	service *service.ApplicationService
}

func NewApplicationHandler(service *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

func (h *ApplicationHandler) Start(w http.ResponseWriter, r *http.Request) {
	var input domain.StartApplicationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	app, err := h.service.Start(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (h *ApplicationHandler) Advance(w http.ResponseWriter, r *http.Request) {
	var input domain.AdvanceApplicationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	app, err := h.service.Advance(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *ApplicationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var input domain.ApproveApplicationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	app, err := h.service.Approve(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// Get returns one application by ?id=, or every application of
// ?applicantId=.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	if applicantID := query.Get("applicantId"); applicantID != "" {
		apps, err := h.service.ListByApplicant(r.Context(), applicantID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, apps)
		return
	}

	id, err := uuid.Parse(query.Get("id"))
	if err != nil {
		http.Error(w, "id must be a UUID", http.StatusBadRequest)
		return
	}
	app, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}
