package captcha

import (
	"encoding/json"
	"net/http"

	"github.com/groupe-serrurerie/contact-api/pkg/logging"
)

// Handler exposes token verification to the browser form, which pre-checks
// the token before submitting the contact payload.
type Handler struct {
	verifier *GoogleVerifier
	logger   *logging.Logger
}

// NewHandler creates a verification handler.
func NewHandler(verifier *GoogleVerifier, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{verifier: verifier, logger: logger}
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	Success bool    `json:"success"`
	Score   float64 `json:"score,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// Verify handles POST /api/verify-recaptcha requests
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		writeJSON(w, http.StatusBadRequest, verifyResponse{Success: false, Error: "Token required"})
		return
	}

	if !h.verifier.Enforced() {
		h.logger.Error("verify-recaptcha called but no secret configured")
		writeJSON(w, http.StatusInternalServerError, verifyResponse{Success: false, Error: "Server error"})
		return
	}

	result, err := h.verifier.Verify(r.Context(), req.Token)
	if err != nil {
		h.logger.Error("siteverify call failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, verifyResponse{Success: false, Error: "Verification failed"})
		return
	}

	writeJSON(w, http.StatusOK, verifyResponse{Success: result.Success, Score: result.Score})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
