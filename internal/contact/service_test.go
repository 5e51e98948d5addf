package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/groupe-serrurerie/contact-api/internal/captcha"
	"github.com/groupe-serrurerie/contact-api/pkg/logging"
)

// fakeRepo records Create calls and can be told to fail.
type fakeRepo struct {
	calls int
	id    string
	err   error
}

func (f *fakeRepo) Create(ctx context.Context, lead *Lead) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.id, nil
}

// fakeVerifier returns a canned verdict.
type fakeVerifier struct {
	enforced bool
	success  bool
	err      error
	calls    int
}

func (f *fakeVerifier) Enforced() bool { return f.enforced }

func (f *fakeVerifier) Verify(ctx context.Context, token string) (*captcha.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &captcha.Result{Success: f.success}, nil
}

// fakeNotifier records Notify calls.
type fakeNotifier struct {
	calls  int
	result NotifyResult
}

func (f *fakeNotifier) Notify(ctx context.Context, lead *Lead) NotifyResult {
	f.calls++
	return f.result
}

func newTestService(repo Repository, verifier ChallengeVerifier, notifier Notifier) *Service {
	return NewService(repo, verifier, notifier, nil, logging.New("error"))
}

func TestSubmitSuccessEndToEnd(t *testing.T) {
	repo := &fakeRepo{id: "lead-123"}
	verifier := &fakeVerifier{enforced: false}
	notifier := &fakeNotifier{result: NotifyResult{Sent: true}}
	svc := newTestService(repo, verifier, notifier)

	result := svc.Submit(context.Background(), validInput(), "203.0.113.7")

	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.Category != "" {
		t.Errorf("expected empty category, got %q", result.Category)
	}
	if result.LeadID != "lead-123" {
		t.Errorf("expected lead id, got %q", result.LeadID)
	}
	if !result.EmailSent {
		t.Error("expected emailSent true")
	}
	if !result.Saved {
		t.Error("expected savedToDatabase true")
	}
	if repo.calls != 1 {
		t.Errorf("expected 1 store call, got %d", repo.calls)
	}
	if notifier.calls != 1 {
		t.Errorf("expected 1 notify call, got %d", notifier.calls)
	}
	if verifier.calls != 0 {
		t.Errorf("unenforced verifier should not be called, got %d calls", verifier.calls)
	}
}

func TestSubmitValidationFailureSkipsEverything(t *testing.T) {
	repo := &fakeRepo{id: "lead-123"}
	verifier := &fakeVerifier{enforced: true, success: true}
	notifier := &fakeNotifier{result: NotifyResult{Sent: true}}
	svc := newTestService(repo, verifier, notifier)

	result := svc.Submit(context.Background(), &SubmissionInput{}, "")

	if result.Success {
		t.Fatal("expected rejection")
	}
	if result.Category != CategoryValidationFailed {
		t.Errorf("expected category %q, got %q", CategoryValidationFailed, result.Category)
	}
	if len(result.AllErrors) == 0 {
		t.Error("expected full error list")
	}
	if result.Error != result.AllErrors[0] {
		t.Error("primary error should be the first of the list")
	}
	if verifier.calls != 0 || repo.calls != 0 || notifier.calls != 0 {
		t.Errorf("no collaborator should run after validation failure: verifier=%d repo=%d notifier=%d",
			verifier.calls, repo.calls, notifier.calls)
	}
}

func TestSubmitChallengeFailureSkipsStoreAndNotify(t *testing.T) {
	repo := &fakeRepo{id: "lead-123"}
	verifier := &fakeVerifier{enforced: true, success: false}
	notifier := &fakeNotifier{result: NotifyResult{Sent: true}}
	svc := newTestService(repo, verifier, notifier)

	result := svc.Submit(context.Background(), validInput(), "")

	if result.Success {
		t.Fatal("expected rejection")
	}
	if result.Category != CategoryRecaptchaFailed {
		t.Errorf("expected category %q, got %q", CategoryRecaptchaFailed, result.Category)
	}
	if repo.calls != 0 {
		t.Errorf("store must not run after challenge failure, got %d calls", repo.calls)
	}
	if notifier.calls != 0 {
		t.Errorf("notifier must not run after challenge failure, got %d calls", notifier.calls)
	}
}

func TestSubmitChallengeOutageAcceptsSubmission(t *testing.T) {
	repo := &fakeRepo{id: "lead-123"}
	verifier := &fakeVerifier{enforced: true, err: errors.New("siteverify unreachable")}
	notifier := &fakeNotifier{result: NotifyResult{Sent: true}}
	svc := newTestService(repo, verifier, notifier)

	result := svc.Submit(context.Background(), validInput(), "")

	if !result.Success {
		t.Fatalf("verification outage should not block submission, got %+v", result)
	}
	if repo.calls != 1 {
		t.Errorf("expected store call, got %d", repo.calls)
	}
}

func TestSubmitStoreFailureStillNotifies(t *testing.T) {
	repo := &fakeRepo{err: &StoreError{Code: CodeTableError, Detail: "relation does not exist"}}
	verifier := &fakeVerifier{enforced: false}
	notifier := &fakeNotifier{result: NotifyResult{Sent: true}}
	svc := newTestService(repo, verifier, notifier)

	result := svc.Submit(context.Background(), validInput(), "")

	if result.Success {
		t.Fatal("expected database_error outcome")
	}
	if result.Category != CategoryDatabaseError {
		t.Errorf("expected category %q, got %q", CategoryDatabaseError, result.Category)
	}
	if result.DBErrorCode != CodeTableError {
		t.Errorf("expected code %q, got %q", CodeTableError, result.DBErrorCode)
	}
	if !result.EmailSent {
		t.Error("store failure must not suppress notification")
	}
	if notifier.calls != 1 {
		t.Errorf("expected exactly 1 notify call, got %d", notifier.calls)
	}
	if result.Error != MsgDatabaseError {
		t.Errorf("expected generic user message, got %q", result.Error)
	}
}

func TestSubmitNoDatabaseConfigured(t *testing.T) {
	verifier := &fakeVerifier{enforced: false}
	notifier := &fakeNotifier{result: NotifyResult{Sent: true}}
	svc := newTestService(nil, verifier, notifier)

	result := svc.Submit(context.Background(), validInput(), "")

	if result.Category != CategoryDatabaseError {
		t.Errorf("expected category %q, got %q", CategoryDatabaseError, result.Category)
	}
	if result.DBErrorCode != CodeNoDBConfig {
		t.Errorf("expected code %q, got %q", CodeNoDBConfig, result.DBErrorCode)
	}
	if notifier.calls != 1 {
		t.Errorf("notifier must still run exactly once, got %d calls", notifier.calls)
	}
}

func TestSubmitConstraintViolationSurfacesFieldMessage(t *testing.T) {
	repo := &fakeRepo{err: &StoreError{
		Code:        CodeCheckViolation,
		Detail:      "check constraint contacts_email_format violated",
		UserMessage: MsgInvalidEmailSQL,
	}}
	svc := newTestService(repo, &fakeVerifier{}, &fakeNotifier{})

	result := svc.Submit(context.Background(), validInput(), "")

	if result.Error != MsgInvalidEmailSQL {
		t.Errorf("expected field-specific message, got %q", result.Error)
	}
	if result.DBErrorCode != CodeCheckViolation {
		t.Errorf("expected SQLSTATE code, got %q", result.DBErrorCode)
	}
}

// panicRepo triggers the outermost pipeline boundary.
type panicRepo struct{}

func (panicRepo) Create(ctx context.Context, lead *Lead) (string, error) {
	panic("unexpected store state")
}

func TestSubmitPanicBecomesServerError(t *testing.T) {
	svc := newTestService(panicRepo{}, &fakeVerifier{}, &fakeNotifier{})

	result := svc.Submit(context.Background(), validInput(), "")

	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Success {
		t.Fatal("expected failure outcome")
	}
	if result.Category != CategoryServerError {
		t.Errorf("expected category %q, got %q", CategoryServerError, result.Category)
	}
	if result.Error != MsgServerError {
		t.Errorf("expected generic server message, got %q", result.Error)
	}
}

func TestSubmitNormalizesBeforeStore(t *testing.T) {
	var stored *Lead
	repo := &captureRepo{onCreate: func(lead *Lead) { stored = lead }}
	svc := newTestService(repo, &fakeVerifier{}, &fakeNotifier{})

	in := validInput()
	in.Email = "  Jean@Test.FR "
	svc.Submit(context.Background(), in, "203.0.113.7")

	if stored == nil {
		t.Fatal("expected stored lead")
	}
	if stored.Email != "jean@test.fr" {
		t.Errorf("expected normalized email, got %q", stored.Email)
	}
	if stored.IPAddress != "203.0.113.7" {
		t.Errorf("expected caller IP on lead, got %q", stored.IPAddress)
	}
}

type captureRepo struct {
	onCreate func(*Lead)
}

func (c *captureRepo) Create(ctx context.Context, lead *Lead) (string, error) {
	if c.onCreate != nil {
		c.onCreate(lead)
	}
	return "captured", nil
}
