// Package api assembles the qclab REST surface from its modules
package api

import (
	modkit "qclab/internal/modkit"
	"qclab/internal/modkit/httpkit"
	"qclab/internal/modkit/module"
	"qclab/internal/modkit/swaggerkit"
	phttp "qclab/internal/platform/net/http"
	"qclab/internal/platform/store"
	codificationmodule "qclab/internal/services/api/codification/module"
	daycodemodule "qclab/internal/services/api/daycode/module"
	demandesmodule "qclab/internal/services/api/demandes/module"
	metamodule "qclab/internal/services/api/meta/module"
	samplingmodule "qclab/internal/services/api/sampling/module"
	auditmodule "qclab/internal/services/audit/module"
)

// Options tunes the API assembly
type Options struct {
	// Swagger serves the API docs under /api/docs when true
	Swagger bool

	// Pingers are readiness checks surfaced by the meta module
	Pingers map[string]store.Pinger
}

// Mount builds every module, registers their ports and mounts the
// /api/v1 surface plus docs on r. The returned slice is ordered as mounted
func Mount(r phttp.Router, deps modkit.Deps, opts Options) []module.Module {
	audit := auditmodule.New(deps)
	recorder := auditmodule.Ports{}
	if p, ok := audit.Ports().(auditmodule.Ports); ok {
		recorder = p
	}

	mods := []module.Module{
		audit,
		daycodemodule.New(deps),
		codificationmodule.New(deps, modkit.WithPorts(codificationmodule.In{Audit: recorder.Recorder})),
		samplingmodule.New(deps, modkit.WithPorts(samplingmodule.In{Audit: recorder.Recorder})),
		demandesmodule.New(deps),
		metamodule.New(deps, modkit.WithPorts(metamodule.In{Pingers: opts.Pingers})),
	}
	for _, m := range mods {
		module.Register(m.Name(), m.Ports())
	}

	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(v1 httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(v1)
		}
	})
	swaggerkit.Mount(r, opts.Swagger)
	return mods
}
