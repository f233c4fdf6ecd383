package module

import (
	"testing"

	phttp "qclab/internal/platform/net/http"
)

type pingPort interface{ Ping() string }

type pinger struct{ tag string }

func (p pinger) Ping() string { return p.tag }

type bundle struct {
	Service pingPort
}

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) MountRoutes(phttp.Router) {}
func (m fakeModule) Ports() any               { return m.ports }
func (m fakeModule) Name() string             { return m.name }

// Registry round-trips typed port bundles by name
func TestRegistryRoundTrip(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("daycode", bundle{Service: pinger{tag: "dc"}})

	got, ok := PortsAs[bundle]("daycode")
	if !ok {
		t.Fatal("ports not found")
	}
	if got.Service.Ping() != "dc" {
		t.Fatalf("wrong bundle: %+v", got)
	}

	if _, ok := PortsAs[bundle]("missing"); ok {
		t.Fatal("expected miss for unknown name")
	}
	if _, ok := PortsAs[string]("daycode"); ok {
		t.Fatal("expected miss for wrong type")
	}
}

// PortsOf walks exported struct fields for a matching interface
func TestPortsOf(t *testing.T) {
	m := fakeModule{name: "x", ports: bundle{Service: pinger{tag: "p"}}}

	p, ok := PortsOf[pingPort](m)
	if !ok {
		t.Fatal("port not found on bundle")
	}
	if p.Ping() != "p" {
		t.Fatalf("wrong port: %v", p)
	}

	if _, ok := PortsOf[interface{ Pong() }](m); ok {
		t.Fatal("expected miss for unimplemented interface")
	}

	empty := fakeModule{name: "y"}
	if _, ok := PortsOf[pingPort](empty); ok {
		t.Fatal("expected miss for nil ports")
	}
}
