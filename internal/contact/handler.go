package contact

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/groupe-serrurerie/contact-api/internal/ipaddr"
	"github.com/groupe-serrurerie/contact-api/pkg/logging"
)

// Handler handles HTTP requests for contact submissions
type Handler struct {
	service *Service
	lookup  *ipaddr.Lookup
	logger  *logging.Logger
}

// NewHandler creates a new contact handler. lookup may be nil; the caller
// IP then comes from proxy headers only.
func NewHandler(service *Service, lookup *ipaddr.Lookup, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		service: service,
		lookup:  lookup,
		logger:  logger,
	}
}

// Submit handles POST /api/contact requests
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var in SubmissionInput

	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.logger.Error("failed to decode submission", "error", err)
		writeJSON(w, http.StatusBadRequest, &SubmissionResult{
			Success:   false,
			Error:     MsgServerError,
			Category:  CategoryServerError,
			Timestamp: time.Now().UTC(),
		})
		return
	}

	callerIP := h.lookup.Resolve(r.Context(), r)
	result := h.service.Submit(r.Context(), &in, callerIP)

	writeJSON(w, statusFor(result), result)
}

// StatusResponse reports endpoint availability for GET /api/contact.
type StatusResponse struct {
	Success           bool      `json:"success"`
	Message           string    `json:"message"`
	Timestamp         time.Time `json:"timestamp"`
	DatabaseReady     bool      `json:"databaseConfigured"`
	ChallengeEnforced bool      `json:"challengeEnforced"`
}

// Status handles GET /api/contact requests
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Success:           true,
		Message:           "Contact API is working!",
		Timestamp:         time.Now().UTC(),
		DatabaseReady:     h.service.StoreConfigured(),
		ChallengeEnforced: h.service.ChallengeEnforced(),
	})
}

func statusFor(result *SubmissionResult) int {
	switch result.Category {
	case "":
		return http.StatusOK
	case CategoryValidationFailed, CategoryRecaptchaFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
