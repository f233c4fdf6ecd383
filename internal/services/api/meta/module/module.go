// Package module wires the meta endpoints into the API using modkit
package module

import (
	"net/http"

	modkit "qclab/internal/modkit"
	"qclab/internal/modkit/httpkit"
	"qclab/internal/platform/store"
	str "qclab/internal/platform/strings"
	metahttp "qclab/internal/services/api/meta/http"
	metasvc "qclab/internal/services/api/meta/service"
)

// Module implements the modkit.Module interface
type Module struct {
	name   string
	prefix string

	mws []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *metasvc.Svc
}

// New constructs the meta module. Inject backend pingers with
// modkit.WithPorts(module.In{...})
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	var in In
	if v, ok := b.Ports.(In); ok {
		in = v
	}
	svc := metasvc.New("qclab-api", in.Pingers)

	m := &Module{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// Ports exposes nothing; meta has no consumers
func (m *Module) Ports() any { return nil }

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// In is the dependency set injected at build time via modkit.WithPorts
type In struct {
	// Pingers are readiness checks keyed by backend name
	Pingers map[string]store.Pinger
}
