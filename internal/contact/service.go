package contact

import (
	"context"
	"time"

	"github.com/groupe-serrurerie/contact-api/internal/captcha"
	"github.com/groupe-serrurerie/contact-api/internal/observability/metrics"
	"github.com/groupe-serrurerie/contact-api/pkg/logging"
)

// ChallengeVerifier confirms a human-interaction token before a submission
// is accepted. Enforced reports whether verification actually runs; an
// unenforced verifier accepts every token.
type ChallengeVerifier interface {
	Enforced() bool
	Verify(ctx context.Context, token string) (*captcha.Result, error)
}

// NotifyResult reports the outcome of the best-effort operator email.
type NotifyResult struct {
	Sent   bool
	Reason string
}

// Notifier dispatches the operator email for a lead. Implementations never
// fail the pipeline: errors are absorbed and reported through NotifyResult.
type Notifier interface {
	Notify(ctx context.Context, lead *Lead) NotifyResult
}

// Service runs the contact-submission pipeline: validate, verify the
// challenge, store the lead, notify the operator, compose the outcome.
// Steps execute strictly in order; the notifier runs exactly once after the
// store step resolves, including when it fails.
type Service struct {
	repo     Repository
	verifier ChallengeVerifier
	notifier Notifier
	metrics  *metrics.ContactMetrics
	logger   *logging.Logger
	now      func() time.Time
}

// NewService wires the pipeline. repo may be nil when no database is
// configured; submissions are then reported as NO_DB_CONFIG but the
// notifier still runs.
func NewService(repo Repository, verifier ChallengeVerifier, notifier Notifier, m *metrics.ContactMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if verifier == nil {
		verifier = disabledVerifier{}
	}
	return &Service{
		repo:     repo,
		verifier: verifier,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Submit runs one pipeline invocation. Any panic below this frame is
// converted into a server_error outcome.
func (s *Service) Submit(ctx context.Context, in *SubmissionInput, callerIP string) (result *SubmissionResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("contact pipeline panicked", "panic", r)
			result = &SubmissionResult{
				Success:   false,
				Error:     MsgServerError,
				Category:  CategoryServerError,
				Timestamp: s.now(),
			}
			s.observe(CategoryServerError)
		}
	}()

	if errs := Validate(in, s.verifier.Enforced()); len(errs) > 0 {
		s.logger.Info("submission rejected by validation", "errors", len(errs))
		s.observe(CategoryValidationFailed)
		return &SubmissionResult{
			Success:   false,
			Error:     PrimaryError(errs),
			AllErrors: errs,
			Category:  CategoryValidationFailed,
			Timestamp: s.now(),
		}
	}

	lead := Normalize(in, callerIP, s.now())

	if s.verifier.Enforced() {
		verdict, err := s.verifier.Verify(ctx, in.RecaptchaToken)
		switch {
		case err != nil:
			// Verification outage: accept the submission rather than turn
			// away real leads. Logged so the asymmetry with an explicit
			// failure verdict stays visible.
			s.logger.Warn("challenge verification unavailable, accepting submission", "error", err)
		case !verdict.Success:
			s.logger.Info("challenge verification rejected submission", "error_codes", verdict.ErrorCodes)
			s.observe(CategoryRecaptchaFailed)
			return &SubmissionResult{
				Success:   false,
				Error:     MsgRecaptchaFailed,
				Category:  CategoryRecaptchaFailed,
				Timestamp: s.now(),
			}
		}
	} else {
		s.logger.Warn("challenge verification disabled, accepting submission without check")
	}

	leadID, storeErr := s.store(ctx, lead)

	// The notifier runs exactly once regardless of the store outcome, so an
	// operator still hears about leads that could not be persisted.
	notifyRes := s.notify(ctx, lead)

	if storeErr != nil {
		s.logger.Error("lead store failed", "code", storeErr.Code, "detail", storeErr.Detail)
		s.observe(CategoryDatabaseError)
		return &SubmissionResult{
			Success:     false,
			Error:       storeErr.User(),
			Category:    CategoryDatabaseError,
			DBErrorCode: storeErr.Code,
			EmailSent:   notifyRes.Sent,
			Timestamp:   s.now(),
		}
	}

	s.logger.Info("lead accepted", "lead_id", leadID, "ville", lead.Ville, "email_sent", notifyRes.Sent)
	s.observe("success")
	return &SubmissionResult{
		Success:   true,
		Message:   MsgSubmissionStored,
		LeadID:    leadID,
		Saved:     true,
		EmailSent: notifyRes.Sent,
		Timestamp: s.now(),
	}
}

func (s *Service) store(ctx context.Context, lead *Lead) (string, *StoreError) {
	if s.repo == nil {
		return "", &StoreError{Code: CodeNoDBConfig, Detail: "database not configured"}
	}
	id, err := s.repo.Create(ctx, lead)
	if err != nil {
		if storeErr, ok := err.(*StoreError); ok {
			return "", storeErr
		}
		return "", &StoreError{Code: CodeTableError, Detail: err.Error()}
	}
	return id, nil
}

func (s *Service) notify(ctx context.Context, lead *Lead) NotifyResult {
	if s.notifier == nil {
		return NotifyResult{Sent: false, Reason: "no_notifier"}
	}
	res := s.notifier.Notify(ctx, lead)
	if s.metrics != nil {
		status := "sent"
		if !res.Sent {
			status = res.Reason
			if status == "" {
				status = "failed"
			}
		}
		s.metrics.ObserveNotification(status)
	}
	return res
}

func (s *Service) observe(outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveSubmission(outcome)
	}
}

// disabledVerifier accepts everything; used when no verifier is wired.
type disabledVerifier struct{}

func (disabledVerifier) Enforced() bool { return false }

func (disabledVerifier) Verify(context.Context, string) (*captcha.Result, error) {
	return &captcha.Result{Success: true}, nil
}

// StoreConfigured reports whether a lead store is wired in, for the status
// endpoint.
func (s *Service) StoreConfigured() bool {
	return s.repo != nil
}

// ChallengeEnforced reports whether submissions require a verified token.
func (s *Service) ChallengeEnforced() bool {
	return s.verifier != nil && s.verifier.Enforced()
}
