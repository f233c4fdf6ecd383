// Package module wires the sampling decision recorder into the API using modkit
package module

import (
	"net/http"

	modkit "qclab/internal/modkit"
	"qclab/internal/modkit/httpkit"
	str "qclab/internal/platform/strings"
	samplinghttp "qclab/internal/services/api/sampling/http"
	samplingrepo "qclab/internal/services/api/sampling/repo"
	samplingsvc "qclab/internal/services/api/sampling/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc samplingsvc.Service
}

// New constructs a sampling module. Inject the audit recorder with
// modkit.WithPorts(module.In{...}); it is optional
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("sampling"),
		modkit.WithPrefix("/sampling"),
	}, opts...)...)

	var in In
	if v, ok := b.Ports.(In); ok {
		in = v
	}
	svc := samplingsvc.New(deps.PG, samplingrepo.NewPG(), in.Audit)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Service: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		samplinghttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// Ports exposes the sampling ports consumed by sibling modules
func (m *Module) Ports() any { return m.ports }

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
