package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "qclab/internal/platform/errors"
	pnet "qclab/internal/platform/net"
	phttp "qclab/internal/platform/net/http"
)

// helper to build a request with a request_id in context
func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid))
}

func TestJSONHelper(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("JSON status: expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct == "" {
		t.Fatalf("expected content-type set")
	}
}

func TestHandleOKCreatedNoContent(t *testing.T) {
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.OK(map[string]string{"a": "b"})
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/x", "rid-1"))
	if rec.Code != http.StatusOK {
		t.Fatalf("OK code: %d", rec.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.StatusCode != 200 || env.RequestID != "rid-1" || env.Data == nil {
		t.Fatalf("bad envelope: %+v", env)
	}

	hc := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.Created(map[string]int{"id": 7})
	})
	recC := httptest.NewRecorder()
	hc(recC, reqWithReqID("POST", "/x", "rid-1"))
	if recC.Code != http.StatusCreated {
		t.Fatalf("Created code: %d", recC.Code)
	}

	hn := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.NoContent()
	})
	recN := httptest.NewRecorder()
	hn(recN, reqWithReqID("DELETE", "/x", "rid-1"))
	if recN.Code != http.StatusNoContent {
		t.Fatalf("NoContent code: %d", recN.Code)
	}
	if recN.Body.Len() != 0 {
		t.Fatalf("NoContent should have empty body, got %q", recN.Body.String())
	}
}

func TestHandleErrorEnvelope(t *testing.T) {
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.Error(perr.New(perr.ErrorCodeNotFound, "nope"))
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/err", "rid-3"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Code != perr.ErrorCodeNotFound || env.Error == "" || env.RequestID != "rid-3" {
		t.Fatalf("bad error envelope: %+v", env)
	}
	if env.Data != nil {
		t.Fatalf("error envelope should carry no data: %+v", env)
	}
}

// Conflict sentinels surface as 409 so the client can branch on them
func TestHandleConflictStatus(t *testing.T) {
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.Error(perr.Conflictf("day code already active"))
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("POST", "/activate", "rid-4"))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}
