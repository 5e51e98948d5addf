package faq

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler serves the read-only FAQ content.
type Handler struct{}

// NewHandler creates a FAQ handler.
func NewHandler() *Handler {
	return &Handler{}
}

// List handles GET /api/faq requests
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"items":      Items(),
		"categories": Categories(),
		"count":      len(Items()),
	})
}

// ListCategory handles GET /api/faq/{category} requests
func (h *Handler) ListCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	items := ByCategory(category)
	if len(items) == 0 {
		http.Error(w, "category not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"category": category,
		"items":    items,
		"count":    len(items),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
