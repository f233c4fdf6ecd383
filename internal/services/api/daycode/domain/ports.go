package domain

import "context"

// ServicePort defines the service contract for the daily code sequencer
type ServicePort interface {
	Activate(ctx context.Context, in ActivateInput) (Snapshot, error)
	CurrentState(ctx context.Context) (Snapshot, error)
	Reset(ctx context.Context, in ResetInput) (Snapshot, error)
}

// SequencerPort is the issuance seam consumed by the codification engine.
// NextValue must be atomic with respect to concurrent callers
type SequencerPort interface {
	NextValue(ctx context.Context) (int64, error)
}
