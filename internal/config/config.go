package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	PublicBaseURL string
	DatabaseURL   string

	// reCAPTCHA challenge verification. When the secret is empty the
	// verifier runs in fail-open mode and submissions are accepted
	// without a challenge check (logged at startup).
	RecaptchaSecretKey string
	RecaptchaVerifyURL string

	// Email notification
	EmailProvider         string // resend, sendgrid or stub
	ResendAPIKey          string
	ResendBaseURL         string
	SendGridAPIKey        string
	ContactFromEmail      string
	ContactFromName       string
	ContactRecipientEmail string

	// Caller IP resolution fallback
	IPLookupURL     string
	IPLookupEnabled bool

	CORSAllowedOrigins []string

	// Per-IP submission rate limiting
	RateLimitPerSecond float64
	RateLimitBurst     int

	HTTPClientTimeout time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		DatabaseURL:   getEnv("DATABASE_URL", ""),

		RecaptchaSecretKey: getEnv("RECAPTCHA_SECRET_KEY", ""),
		RecaptchaVerifyURL: getEnv("RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify"),

		EmailProvider:         strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "resend"))),
		ResendAPIKey:          getEnv("RESEND_API_KEY", ""),
		ResendBaseURL:         getEnv("RESEND_BASE_URL", "https://api.resend.com"),
		SendGridAPIKey:        getEnv("SENDGRID_API_KEY", ""),
		ContactFromEmail:      getEnv("CONTACT_FROM_EMAIL", "onboarding@resend.dev"),
		ContactFromName:       getEnv("CONTACT_FROM_NAME", "Formulaire de contact"),
		ContactRecipientEmail: getEnv("CONTACT_RECIPIENT_EMAIL", ""),

		IPLookupURL:     getEnv("IP_LOOKUP_URL", "https://api.ipify.org?format=json"),
		IPLookupEnabled: getEnvAsBool("IP_LOOKUP_ENABLED", false),

		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "")),

		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 1),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 5),

		HTTPClientTimeout: getEnvAsDuration("HTTP_CLIENT_TIMEOUT", 10*time.Second),
	}
}

// ChallengeEnforced reports whether reCAPTCHA verification will actually run.
func (c *Config) ChallengeEnforced() bool {
	return strings.TrimSpace(c.RecaptchaSecretKey) != ""
}

// DatabaseConfigured reports whether a lead store is available.
func (c *Config) DatabaseConfigured() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
