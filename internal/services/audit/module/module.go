// Package module wires the audit mirror. It mounts no routes; it only
// publishes the recorder port consumed by the api modules
package module

import (
	modkit "qclab/internal/modkit"
	"qclab/internal/modkit/httpkit"
	auditrepo "qclab/internal/services/audit/repo"
	auditsvc "qclab/internal/services/audit/service"
)

// Module implements the modkit.Module interface
type Module struct {
	name  string
	ports any
}

// New constructs the audit module. With no ClickHouse configured the
// recorder degrades to a no-op
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("audit")}, opts...)...)

	var r auditrepo.Repo
	if deps.CH != nil {
		r = auditrepo.NewCH(deps.CH)
	}
	svc := auditsvc.New(r, deps.Log)

	return &Module{
		name:  b.Name,
		ports: Ports{Recorder: svc},
	}
}

// Ports exposes the recorder port
func (m *Module) Ports() any { return m.ports }

// MountRoutes is a no-op; the mirror has no HTTP surface
func (m *Module) MountRoutes(httpkit.Router) {}

// Name returns the module name
func (m *Module) Name() string { return m.name }
