package bind

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "qclab/internal/platform/errors"
)

type payload struct {
	Operator string `json:"operator" validate:"required,min=1,max=10"`
	Count    int    `json:"count" validate:"omitempty,min=1"`
}

// Valid JSON binds and validates
func TestParseJSONValid(t *testing.T) {
	req := httptest.NewRequest("POST", "/x", strings.NewReader(`{"operator":"alice","count":2}`))
	got, err := ParseJSON[payload](req)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Operator != "alice" || got.Count != 2 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

// Malformed bodies and unknown fields map to the JSON error code
func TestParseJSONBadBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed", body: `{"operator":`},
		{name: "unknown field", body: `{"operator":"a","nope":1}`},
		{name: "trailing data", body: `{"operator":"a"} extra`},
		{name: "empty post body", body: ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/x", strings.NewReader(tt.body))
			_, err := ParseJSON[payload](req)
			if perr.CodeOf(err) != perr.ErrorCodeJSON {
				t.Fatalf("code = %v, want json error (err=%v)", perr.CodeOf(err), err)
			}
		})
	}
}

// Validation failures carry the json field name and a translated message
func TestParseJSONValidation(t *testing.T) {
	req := httptest.NewRequest("POST", "/x", strings.NewReader(`{"operator":""}`))
	_, err := ParseJSON[payload](req)
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("code = %v, want validation", perr.CodeOf(err))
	}
	pe, ok := perr.As(err)
	if !ok || pe.Field() != "operator" {
		t.Fatalf("field = %+v, want operator", pe)
	}
}

// GET with no body binds the zero value instead of failing
func TestParseJSONEmptyGet(t *testing.T) {
	req := httptest.NewRequest("GET", "/x", nil)
	got, err := ParseJSON[payload](req)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Operator != "" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}
