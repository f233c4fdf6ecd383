package module

import "qclab/internal/services/api/daycode/domain"

// Ports is the daycode surface other modules may depend on
type Ports struct {
	Service   domain.ServicePort
	Sequencer domain.SequencerPort
}
