package modkit

import (
	"net/http"
	"testing"

	phttp "qclab/internal/platform/net/http"
)

// Build applies options in order and defaults the router hooks
func TestBuild(t *testing.T) {
	mw := func(next http.Handler) http.Handler { return next }

	b := Build(
		WithName("daycode"),
		WithPrefix("/daycode"),
		WithMiddlewares(mw),
		WithPorts("bundle"),
	)
	if b.Name != "daycode" || b.Prefix != "/daycode" {
		t.Fatalf("unexpected built: %+v", b)
	}
	if len(b.Mw) != 1 {
		t.Fatalf("mw = %d, want 1", len(b.Mw))
	}
	if b.Ports != "bundle" {
		t.Fatalf("ports = %v", b.Ports)
	}
	if b.Subrouter == nil || b.Register == nil {
		t.Fatal("router hooks should default to no-ops")
	}
	// identity subrouter by default
	if got := b.Subrouter(nil); got != nil {
		t.Fatalf("default subrouter not identity: %v", got)
	}
}

// Later options override earlier ones
func TestBuildOverride(t *testing.T) {
	b := Build(WithName("a"), WithName("b"))
	if b.Name != "b" {
		t.Fatalf("name = %q, want b", b.Name)
	}
}

// Custom hooks are carried through
func TestBuildHooks(t *testing.T) {
	var registered bool
	b := Build(WithRegister(func(phttp.Router) { registered = true }))
	b.Register(nil)
	if !registered {
		t.Fatal("register hook not invoked")
	}
}
