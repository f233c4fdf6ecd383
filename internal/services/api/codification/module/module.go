// Package module wires the lot codification engine into the API using modkit
package module

import (
	"net/http"

	modkit "qclab/internal/modkit"
	"qclab/internal/modkit/httpkit"
	"qclab/internal/modkit/repokit"
	str "qclab/internal/platform/strings"
	codificationhttp "qclab/internal/services/api/codification/http"
	codificationrepo "qclab/internal/services/api/codification/repo"
	codificationsvc "qclab/internal/services/api/codification/service"
	daycoderepo "qclab/internal/services/api/daycode/repo"
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

	svc codificationsvc.Service
}

// New constructs a codification module. Inject the audit recorder with
// modkit.WithPorts(module.In{...}); it is optional
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("codification"),
		modkit.WithPrefix("/codification"),
	}, opts...)...)

	var in In
	if v, ok := b.Ports.(In); ok {
		in = v
	}

	// the sequencer binds to the same queryer as the code inserts so the
	// counter increment commits or rolls back with them
	seq := repokit.BindFunc[daycoderepo.Sequencer](func(q repokit.Queryer) daycoderepo.Sequencer {
		return daycoderepo.NewPG().Bind(q)
	})
	svc := codificationsvc.New(deps.PG, codificationrepo.NewPG(), seq, in.Audit)

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
		codificationhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// Ports exposes the codification ports consumed by sibling modules
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
