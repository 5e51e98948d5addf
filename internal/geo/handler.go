package geo

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/groupe-serrurerie/contact-api/pkg/logging"
)

// Handler serves the read-only service-area directory.
type Handler struct {
	logger *logging.Logger
}

// NewHandler creates a geo handler.
func NewHandler(logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{logger: logger}
}

// ListDepartments handles GET /api/departements requests
func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"departments": Departments(),
		"count":       len(Departments()),
	})
}

// GetDepartment handles GET /api/departements/{key} requests
func (h *Handler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	dept, ok := DepartmentByKey(key)
	if !ok {
		http.Error(w, "department not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, dept)
}

// ListCities handles GET /api/villes requests
func (h *Handler) ListCities(w http.ResponseWriter, r *http.Request) {
	cities := AllCities()
	if dept := r.URL.Query().Get("departement"); dept != "" {
		filtered := cities[:0:0]
		for _, c := range cities {
			if c.DepartmentKey == dept || c.DepartmentID == dept {
				filtered = append(filtered, c)
			}
		}
		cities = filtered
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"cities": cities,
		"count":  len(cities),
	})
}

// GetCity handles GET /api/villes/{slug} requests
func (h *Handler) GetCity(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	city, ok := CityBySlug(slug)
	if !ok {
		http.Error(w, "city not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, city)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
