package contact

import (
	"strings"
	"time"
)

// SubmissionInput is the raw contact form payload as posted by the site.
// Field names follow the form: the city field is "ville".
type SubmissionInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Ville          string `json:"ville"`
	Address        string `json:"address"`
	Message        string `json:"message"`
	Service        string `json:"service,omitempty"`
	RecaptchaToken string `json:"recaptchaToken,omitempty"`
}

// Lead is a normalized submission ready for storage and notification:
// fields trimmed, email lower-cased, caller IP and submission time attached.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Ville     string    `json:"ville"`
	Address   string    `json:"address"`
	Message   string    `json:"message"`
	Service   string    `json:"service,omitempty"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
}

// UnknownIP is stored when the caller's address could not be determined.
const UnknownIP = "unknown"

// Normalize builds a Lead from a validated input. The ID is assigned by the
// store on insert; callerIP falls back to "unknown".
func Normalize(in *SubmissionInput, callerIP string, submittedAt time.Time) *Lead {
	if strings.TrimSpace(callerIP) == "" {
		callerIP = UnknownIP
	}
	return &Lead{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Ville:     strings.TrimSpace(in.Ville),
		Address:   strings.TrimSpace(in.Address),
		Message:   strings.TrimSpace(in.Message),
		Service:   strings.TrimSpace(in.Service),
		IPAddress: callerIP,
		CreatedAt: submittedAt,
	}
}

// SubmissionResult is the terminal outcome of one pipeline invocation.
type SubmissionResult struct {
	Success     bool      `json:"success"`
	Message     string    `json:"message,omitempty"`
	Error       string    `json:"error,omitempty"`
	AllErrors   []string  `json:"allErrors,omitempty"`
	Category    string    `json:"validation,omitempty"`
	DBErrorCode string    `json:"dbErrorCode,omitempty"`
	LeadID      string    `json:"leadId,omitempty"`
	Saved       bool      `json:"savedToDatabase"`
	EmailSent   bool      `json:"emailSent"`
	Timestamp   time.Time `json:"timestamp"`
}

// Error categories reported in SubmissionResult.Category.
const (
	CategoryValidationFailed = "frontend_validation_failed"
	CategoryRecaptchaFailed  = "recaptcha_failed"
	CategoryDatabaseError    = "database_error"
	CategoryServerError      = "server_error"
)
