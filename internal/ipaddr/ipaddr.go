// Package ipaddr resolves the caller's IP address for lead records:
// proxy headers first, then an optional public lookup service, then
// "unknown".
package ipaddr

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/groupe-serrurerie/contact-api/pkg/logging"
)

// Unknown is recorded when no address could be determined.
const Unknown = "unknown"

// FromRequest extracts the caller IP from proxy headers or the remote
// address. Returns "" when nothing usable is present.
func FromRequest(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// First hop is the original client.
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-Ip")); xri != "" {
		return xri
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	return strings.TrimSpace(r.RemoteAddr)
}

// Lookup queries a public what-is-my-ip endpoint (ipify-shaped:
// {"ip":"..."}) as a fallback when no header carries the caller address.
type Lookup struct {
	url    string
	client *http.Client
	logger *logging.Logger
}

// NewLookup creates a lookup client. url must return {"ip": "..."}.
func NewLookup(url string, timeout time.Duration, logger *logging.Logger) *Lookup {
	if logger == nil {
		logger = logging.Default()
	}
	return &Lookup{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Resolve returns the caller IP from the request, the lookup service, or
// Unknown. Lookup failures are logged and absorbed.
func (l *Lookup) Resolve(ctx context.Context, r *http.Request) string {
	if ip := FromRequest(r); ip != "" {
		return ip
	}
	if l == nil || l.url == "" {
		return Unknown
	}
	ip, err := l.fetch(ctx)
	if err != nil {
		l.logger.Warn("ip lookup failed", "error", err)
		return Unknown
	}
	return ip
}

func (l *Lookup) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return "", fmt.Errorf("ipaddr: build request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ipaddr: lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ipaddr: lookup returned status %d", resp.StatusCode)
	}

	var payload struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("ipaddr: decode response: %w", err)
	}
	if strings.TrimSpace(payload.IP) == "" {
		return "", fmt.Errorf("ipaddr: empty ip in response")
	}
	return payload.IP, nil
}
