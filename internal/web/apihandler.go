package web

import (
	"encoding/json"
	"net/http"

	"github.com/lehrcode/guestbook/internal/guestbook"
)

// APIHandler exposes the listing and submission as JSON under
// /api/v1/entries.
type APIHandler struct {
	svc *guestbook.Service
}

func NewAPIHandler(svc *guestbook.Service) *APIHandler {
	return &APIHandler{svc: svc}
}

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// List handles GET /api/v1/entries and returns the listing view model.
func (h *APIHandler) List(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.List(r.Context(), r.FormValue("page"))
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

// Create handles POST /api/v1/entries and returns the stored entry with its
// server-assigned id and timestamp.
func (h *APIHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := h.svc.Submit(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		httpError(w, r, err)
		return
	}

	logFrom(r).Info("entry created", "id", entry.ID)
	writeJSON(w, r, http.StatusCreated, entry)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logFrom(r).Error("encoding response", "error", err)
	}
}
