package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

// Each code maps to its HTTP status
func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{ErrorCodeDB, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := HTTPStatusCode(tt.code); got != tt.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

// Wrapping keeps errors.Is working on sentinels and preserves the outer code
func TestWrapPreservesIs(t *testing.T) {
	sentinel := New(ErrorCodeConflict, "already active")
	wrapped := Wrapf(sentinel, ErrorCodeConflict, "activate lot %s", "L-001")

	if !errors.Is(wrapped, sentinel) {
		t.Fatal("errors.Is lost through Wrapf")
	}
	if CodeOf(wrapped) != ErrorCodeConflict {
		t.Fatalf("CodeOf = %v", CodeOf(wrapped))
	}
	if !IsCode(wrapped, ErrorCodeConflict) {
		t.Fatal("IsCode false for wrapped conflict")
	}
}

// Plain errors fall back to the unknown code
func TestCodeOfPlainError(t *testing.T) {
	err := fmt.Errorf("boom")
	if CodeOf(err) != ErrorCodeUnknown {
		t.Fatalf("CodeOf = %v, want unknown", CodeOf(err))
	}
	if CodeOf(nil) != ErrorCodeUnknown {
		t.Fatalf("CodeOf(nil) = %v, want unknown", CodeOf(nil))
	}
}

// WithField attaches the field without dropping message or code
func TestWithField(t *testing.T) {
	err := WithField(Validationf("operator is required"), "operator")
	pe, ok := As(err)
	if !ok {
		t.Fatal("not a project error")
	}
	if pe.Field() != "operator" || pe.Code() != ErrorCodeValidation {
		t.Fatalf("unexpected: field=%q code=%v", pe.Field(), pe.Code())
	}
	w := pe.ToWire()
	if w.Field != "operator" || w.Message == "" {
		t.Fatalf("bad wire: %+v", w)
	}
}

// Root unwraps to the deepest cause
func TestRoot(t *testing.T) {
	cause := fmt.Errorf("io failure")
	err := Wrap(Wrap(cause, ErrorCodeDB, "query"), ErrorCodeDB, "load lot")
	if Root(err) != cause {
		t.Fatalf("Root = %v, want cause", Root(err))
	}
}
