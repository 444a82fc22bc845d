package errors

import (
	"fmt"
	"testing"
)

func TestHearthError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeCredentialMissing, "no credential")
	if err.Code != ErrCodeCredentialMissing {
		t.Errorf("expected code %s, got %s", ErrCodeCredentialMissing, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeTransport, "request failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeTransport) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeStorageParse) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("endpoint", "/chat/completions").WithDetail("status", 401)
	if detailed.Details["endpoint"] != "/chat/completions" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	// Test StorageParse
	err := StorageParse("todos", fmt.Errorf("unexpected end of JSON input"))
	if err.Code != ErrCodeStorageParse {
		t.Errorf("expected code %s, got %s", ErrCodeStorageParse, err.Code)
	}
	if err.Details["key"] != "todos" {
		t.Error("StorageParse should include key detail")
	}

	// Test TransportStatus
	err = TransportStatus("https://api.perplexity.ai/chat/completions", 429)
	if err.Code != ErrCodeTransport {
		t.Errorf("expected code %s, got %s", ErrCodeTransport, err.Code)
	}
	if err.Details["status"] != 429 {
		t.Error("TransportStatus should include status detail")
	}

	// Test GetCode through wrapping
	outer := fmt.Errorf("send: %w", CredentialMissing())
	if GetCode(outer) != ErrCodeCredentialMissing {
		t.Error("GetCode should unwrap to the inner code")
	}
}
