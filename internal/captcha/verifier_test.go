package captcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/groupe-serrurerie/contact-api/pkg/logging"
)

func siteverifyStub(t *testing.T, result Result) (*httptest.Server, *capturedForm) {
	t.Helper()
	captured := &capturedForm{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		captured.secret = r.PostFormValue("secret")
		captured.response = r.PostFormValue("response")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(result)
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

type capturedForm struct {
	secret   string
	response string
}

func TestVerifySendsFormEncodedCredentials(t *testing.T) {
	srv, captured := siteverifyStub(t, Result{Success: true, Score: 0.9, Hostname: "serrurierexpress.fr"})
	v := NewGoogleVerifier("secret-key", srv.URL, time.Second, logging.New("error"))

	result, err := v.Verify(context.Background(), "client-token")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !result.Success {
		t.Error("expected passing verdict")
	}
	if result.Score != 0.9 {
		t.Errorf("expected score 0.9, got %v", result.Score)
	}
	if captured.secret != "secret-key" {
		t.Errorf("expected secret in form body, got %q", captured.secret)
	}
	if captured.response != "client-token" {
		t.Errorf("expected token in form body, got %q", captured.response)
	}
}

func TestVerifyFailureVerdict(t *testing.T) {
	srv, _ := siteverifyStub(t, Result{Success: false, ErrorCodes: []string{"invalid-input-response"}})
	v := NewGoogleVerifier("secret-key", srv.URL, time.Second, logging.New("error"))

	result, err := v.Verify(context.Background(), "bad-token")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if result.Success {
		t.Error("expected failing verdict")
	}
	if len(result.ErrorCodes) != 1 || result.ErrorCodes[0] != "invalid-input-response" {
		t.Errorf("expected error codes from verdict, got %v", result.ErrorCodes)
	}
}

func TestVerifyNon200Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	v := NewGoogleVerifier("secret-key", srv.URL, time.Second, logging.New("error"))

	if _, err := v.Verify(context.Background(), "tok"); err == nil {
		t.Fatal("expected error on non-200 siteverify status")
	}
}

func TestVerifyUnreachableEndpoint(t *testing.T) {
	v := NewGoogleVerifier("secret-key", "http://127.0.0.1:1", 200*time.Millisecond, logging.New("error"))
	if _, err := v.Verify(context.Background(), "tok"); err == nil {
		t.Fatal("expected network error")
	}
}

func TestVerifyUnenforcedPassesWithoutNetworkCall(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	t.Cleanup(srv.Close)

	v := NewGoogleVerifier("  ", srv.URL, time.Second, logging.New("error"))
	if v.Enforced() {
		t.Fatal("blank secret should not enforce")
	}

	result, err := v.Verify(context.Background(), "anything")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !result.Success {
		t.Error("unenforced verifier must pass every token")
	}
	if calls != 0 {
		t.Errorf("expected no network call, got %d", calls)
	}
}

func TestEnforced(t *testing.T) {
	if !NewGoogleVerifier("k", "http://example.invalid", time.Second, nil).Enforced() {
		t.Error("expected enforced with a secret")
	}
	if NewGoogleVerifier("", "http://example.invalid", time.Second, nil).Enforced() {
		t.Error("expected unenforced without a secret")
	}
}
