package module

import "qclab/internal/services/api/demandes/domain"

// Ports is the demandes surface other modules may depend on
type Ports struct {
	Service domain.ServicePort
}
