package module

import "qclab/internal/services/audit/domain"

// Ports is the audit surface other modules may depend on
type Ports struct {
	Recorder domain.RecorderPort
}
