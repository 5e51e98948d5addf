package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation messages shown to the caller, in the site's language.
const (
	msgNameRequired    = "Le nom est requis"
	msgNameTooShort    = "Le nom doit contenir au moins 2 caractères"
	msgNameTooLong     = "Le nom ne peut pas dépasser 50 caractères"
	msgEmailRequired   = "L'email est requis"
	msgEmailInvalid    = "Veuillez entrer une adresse email valide"
	msgEmailTooLong    = "L'email ne peut pas dépasser 100 caractères"
	msgPhoneRequired   = "Le téléphone est requis"
	msgPhoneTooFew     = "Le téléphone doit contenir au moins 6 chiffres"
	msgPhoneTooLong    = "Le téléphone ne peut pas dépasser 20 caractères"
	msgPhoneBadFormat  = "Format de téléphone invalide. Utilisez des chiffres, +, espaces, tirets ou parenthèses"
	msgVilleRequired   = "La ville est requise"
	msgVilleTooShort   = "La ville doit contenir au moins 2 caractères"
	msgVilleTooLong    = "La ville ne peut pas dépasser 50 caractères"
	msgAddressRequired = "L'adresse est requise"
	msgAddressTooShort = "L'adresse doit contenir au moins 5 caractères"
	msgAddressTooLong  = "L'adresse ne peut pas dépasser 100 caractères"
	msgMessageRequired = "Le message est requis"
	msgMessageTooShort = "Le message doit contenir au moins 10 caractères"
	msgMessageTooLong  = "Le message ne peut pas dépasser 500 caractères"
	msgServiceTooLong  = "Le type de service ne peut pas dépasser 20 caractères"
	msgCaptchaRequired = "Veuillez valider le reCAPTCHA"
)

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern   = regexp.MustCompile(`^[0-9+\s\-()]{6,20}$`)
	phoneNonDigits = regexp.MustCompile(`[^\d+]`)
)

// Validate applies every field rule and returns all violated ones as
// localized messages, ordered by field declaration. An empty slice means the
// input is valid. Pure: no side effects, same input yields same output.
// challengeRequired adds the reCAPTCHA token presence rule.
func Validate(in *SubmissionInput, challengeRequired bool) []string {
	var errs []string

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, msgNameRequired)
	} else {
		name := strings.TrimSpace(in.Name)
		if utf8.RuneCountInString(name) < 2 {
			errs = append(errs, msgNameTooShort)
		}
		if utf8.RuneCountInString(name) > 50 {
			errs = append(errs, msgNameTooLong)
		}
	}

	if strings.TrimSpace(in.Email) == "" {
		errs = append(errs, msgEmailRequired)
	} else {
		email := strings.ToLower(strings.TrimSpace(in.Email))
		if !emailPattern.MatchString(email) {
			errs = append(errs, msgEmailInvalid)
		}
		if utf8.RuneCountInString(email) > 100 {
			errs = append(errs, msgEmailTooLong)
		}
	}

	if strings.TrimSpace(in.Phone) == "" {
		errs = append(errs, msgPhoneRequired)
	} else {
		phone := strings.TrimSpace(in.Phone)
		digits := phoneNonDigits.ReplaceAllString(phone, "")
		if utf8.RuneCountInString(digits) < 6 {
			errs = append(errs, msgPhoneTooFew)
		}
		if utf8.RuneCountInString(phone) > 20 {
			errs = append(errs, msgPhoneTooLong)
		}
		if !phonePattern.MatchString(phone) {
			errs = append(errs, msgPhoneBadFormat)
		}
	}

	if strings.TrimSpace(in.Ville) == "" {
		errs = append(errs, msgVilleRequired)
	} else {
		ville := strings.TrimSpace(in.Ville)
		if utf8.RuneCountInString(ville) < 2 {
			errs = append(errs, msgVilleTooShort)
		}
		if utf8.RuneCountInString(ville) > 50 {
			errs = append(errs, msgVilleTooLong)
		}
	}

	if strings.TrimSpace(in.Address) == "" {
		errs = append(errs, msgAddressRequired)
	} else {
		address := strings.TrimSpace(in.Address)
		if utf8.RuneCountInString(address) < 5 {
			errs = append(errs, msgAddressTooShort)
		}
		if utf8.RuneCountInString(address) > 100 {
			errs = append(errs, msgAddressTooLong)
		}
	}

	if strings.TrimSpace(in.Message) == "" {
		errs = append(errs, msgMessageRequired)
	} else {
		message := strings.TrimSpace(in.Message)
		if utf8.RuneCountInString(message) < 10 {
			errs = append(errs, msgMessageTooShort)
		}
		if utf8.RuneCountInString(message) > 500 {
			errs = append(errs, msgMessageTooLong)
		}
	}

	if in.Service != "" && utf8.RuneCountInString(strings.TrimSpace(in.Service)) > 20 {
		errs = append(errs, msgServiceTooLong)
	}

	if challengeRequired && strings.TrimSpace(in.RecaptchaToken) == "" {
		errs = append(errs, msgCaptchaRequired)
	}

	return errs
}

// PrimaryError returns the message surfaced as the main rejection reason.
func PrimaryError(errs []string) string {
	if len(errs) == 0 {
		return ""
	}
	return errs[0]
}
