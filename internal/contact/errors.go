package contact

import "fmt"

// Store error codes surfaced in SubmissionResult.DBErrorCode.
const (
	CodeNoDBConfig      = "NO_DB_CONFIG"
	CodeTableError      = "TABLE_ERROR"
	CodeCheckViolation  = "23514"
	MsgDatabaseError    = "Erreur lors de l'enregistrement dans la base de données."
	MsgInvalidEmailSQL  = "Format d'email invalide"
	MsgInvalidPhoneSQL  = "Format de téléphone invalide"
	MsgServerError      = "Une erreur interne est survenue lors de l'envoi du formulaire."
	MsgRecaptchaFailed  = "Validation reCAPTCHA échouée. Veuillez réessayer."
	MsgSubmissionStored = "Message envoyé avec succès!"
)

// StoreError describes a lead-store failure with a machine code for
// operators and a localized message for the caller.
type StoreError struct {
	Code        string
	Detail      string
	UserMessage string
}

func (e *StoreError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("contact: store error (%s)", e.Code)
	}
	return fmt.Sprintf("contact: store error (%s): %s", e.Code, e.Detail)
}

// User returns the caller-facing message, falling back to the generic one.
func (e *StoreError) User() string {
	if e.UserMessage != "" {
		return e.UserMessage
	}
	return MsgDatabaseError
}
