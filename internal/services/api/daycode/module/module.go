// Package module wires the daily code sequencer into the API using modkit
package module

import (
	"net/http"

	modkit "qclab/internal/modkit"
	"qclab/internal/modkit/httpkit"
	str "qclab/internal/platform/strings"
	daycodehttp "qclab/internal/services/api/daycode/http"
	daycoderepo "qclab/internal/services/api/daycode/repo"
	daycodesvc "qclab/internal/services/api/daycode/service"
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

	svc daycodesvc.Service
}

// New constructs a daycode module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("daycode"), modkit.WithPrefix("/daycode")}, opts...)...)

	svc := daycodesvc.New(deps.PG, daycoderepo.NewPG())

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Service: svc, Sequencer: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		daycodehttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// Ports exposes the daycode ports consumed by sibling modules
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
