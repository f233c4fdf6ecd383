package module

import (
	"qclab/internal/services/api/codification/domain"
	auditdomain "qclab/internal/services/audit/domain"
)

// In is the dependency set injected at build time via modkit.WithPorts
type In struct {
	// Audit mirrors issuance events; nil disables mirroring
	Audit auditdomain.RecorderPort
}

// Ports is the codification surface other modules may depend on
type Ports struct {
	Service domain.ServicePort
}
