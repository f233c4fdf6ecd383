package module

import (
	"qclab/internal/services/api/sampling/domain"
	auditdomain "qclab/internal/services/audit/domain"
)

// In is the dependency set injected at build time via modkit.WithPorts
type In struct {
	// Audit mirrors YES decisions; nil disables mirroring
	Audit auditdomain.RecorderPort
}

// Ports is the sampling surface other modules may depend on
type Ports struct {
	Service domain.ServicePort
}
