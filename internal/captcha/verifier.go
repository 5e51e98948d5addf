// Package captcha verifies reCAPTCHA challenge tokens against Google's
// siteverify endpoint.
package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/groupe-serrurerie/contact-api/pkg/logging"
)

// Result is Google's siteverify verdict.
type Result struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score,omitempty"`
	ChallengeTS string   `json:"challenge_ts,omitempty"`
	Hostname    string   `json:"hostname,omitempty"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// GoogleVerifier calls the siteverify endpoint with a shared secret.
// Without a secret it runs fail-open: Enforced reports false and every
// token verifies. That mode exists for environments where the secret is
// not provisioned and is logged, never silent.
type GoogleVerifier struct {
	secret    string
	verifyURL string
	client    *http.Client
	logger    *logging.Logger
}

// NewGoogleVerifier creates a verifier. secret may be empty (fail-open).
func NewGoogleVerifier(secret, verifyURL string, timeout time.Duration, logger *logging.Logger) *GoogleVerifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &GoogleVerifier{
		secret:    strings.TrimSpace(secret),
		verifyURL: verifyURL,
		client:    &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

// Enforced reports whether verification actually runs.
func (v *GoogleVerifier) Enforced() bool {
	return v.secret != ""
}

// Verify checks the token against siteverify. When unenforced it returns a
// passing Result without a network call.
func (v *GoogleVerifier) Verify(ctx context.Context, token string) (*Result, error) {
	if !v.Enforced() {
		v.logger.Warn("recaptcha secret not configured, skipping verification")
		return &Result{Success: true}, nil
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("captcha: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("captcha: siteverify call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("captcha: siteverify returned status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("captcha: decode siteverify response: %w", err)
	}

	v.logger.Debug("siteverify verdict", "success", result.Success, "score", result.Score, "hostname", result.Hostname)
	return &result, nil
}
