package notify

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/groupe-serrurerie/contact-api/internal/contact"
	"github.com/groupe-serrurerie/contact-api/pkg/logging"
)

// LeadNotifier sends the operator a summary email for each lead. Always
// best-effort: every failure is absorbed into the returned NotifyResult so
// the pipeline outcome never depends on email health.
type LeadNotifier struct {
	sender    EmailSender
	recipient string
	logger    *logging.Logger
}

// NewLeadNotifier creates a notifier. sender may be nil (no provider
// configured); Notify then reports no_api_key without attempting a call.
func NewLeadNotifier(sender EmailSender, recipient string, logger *logging.Logger) *LeadNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeadNotifier{
		sender:    sender,
		recipient: recipient,
		logger:    logger,
	}
}

// Notify formats and dispatches the lead summary.
func (n *LeadNotifier) Notify(ctx context.Context, lead *contact.Lead) contact.NotifyResult {
	if n.sender == nil {
		n.logger.Warn("email sender not configured, skipping notification")
		return contact.NotifyResult{Sent: false, Reason: "no_api_key"}
	}
	if n.recipient == "" {
		n.logger.Warn("no recipient configured, skipping notification")
		return contact.NotifyResult{Sent: false, Reason: "no_recipient"}
	}

	msg := EmailMessage{
		To:      n.recipient,
		ReplyTo: lead.Email,
		Subject: fmt.Sprintf("📧 Nouveau message de %s", lead.Name),
		Body:    textSummary(lead),
		HTML:    htmlSummary(lead),
	}

	if err := n.sender.Send(ctx, msg); err != nil {
		n.logger.Warn("lead notification failed", "error", err, "ville", lead.Ville)
		return contact.NotifyResult{Sent: false, Reason: "send_failed"}
	}
	return contact.NotifyResult{Sent: true}
}

func textSummary(lead *contact.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nouveau message de contact\n\n")
	fmt.Fprintf(&b, "Nom: %s\n", lead.Name)
	fmt.Fprintf(&b, "Email: %s\n", lead.Email)
	fmt.Fprintf(&b, "Téléphone: %s\n", lead.Phone)
	fmt.Fprintf(&b, "Ville: %s\n", lead.Ville)
	fmt.Fprintf(&b, "Adresse: %s\n", lead.Address)
	if lead.Service != "" {
		fmt.Fprintf(&b, "Service: %s\n", lead.Service)
	}
	fmt.Fprintf(&b, "\nMessage:\n%s\n", lead.Message)
	fmt.Fprintf(&b, "\nIP: %s | %s\n", lead.IPAddress, formatFR(lead.CreatedAt))
	return b.String()
}

func htmlSummary(lead *contact.Lead) string {
	message := strings.ReplaceAll(html.EscapeString(lead.Message), "\n", "<br>")
	serviceRow := ""
	if lead.Service != "" {
		serviceRow = fmt.Sprintf("<p><strong>🔧 Service:</strong> %s</p>", html.EscapeString(lead.Service))
	}
	return fmt.Sprintf(`
          <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
            <h2 style="color: #dc2626; border-bottom: 2px solid #dc2626; padding-bottom: 10px;">
              Nouveau message de contact
            </h2>
            <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
              <p><strong>👤 Nom:</strong> %s</p>
              <p><strong>📧 Email:</strong> <a href="mailto:%s">%s</a></p>
              <p><strong>📞 Téléphone:</strong> <a href="tel:%s">%s</a></p>
              <p><strong>🏙️ Ville:</strong> %s</p>
              <p><strong>📍 Adresse:</strong> %s</p>
              %s
              <p><strong>💬 Message:</strong></p>
              <div style="background: white; padding: 15px; border-radius: 4px; margin-top: 10px; border-left: 3px solid #dc2626;">
                %s
              </div>
            </div>
            <div style="font-size: 12px; color: #64748b; text-align: center; margin-top: 20px; padding-top: 10px; border-top: 1px solid #e2e8f0;">
              <p>IP: %s | %s</p>
              <p>Groupe Officiel de Serrurerie - Formulaire de contact</p>
            </div>
          </div>`,
		html.EscapeString(lead.Name),
		html.EscapeString(lead.Email), html.EscapeString(lead.Email),
		html.EscapeString(lead.Phone), html.EscapeString(lead.Phone),
		html.EscapeString(lead.Ville),
		html.EscapeString(lead.Address),
		serviceRow,
		message,
		html.EscapeString(lead.IPAddress), formatFR(lead.CreatedAt),
	)
}

// formatFR renders the submission time the way the operator reads it.
func formatFR(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}

var _ contact.Notifier = (*LeadNotifier)(nil)
