package domain

import "context"

// RecorderPort is the fire-and-forget mirror consumed by the api modules.
// Implementations must never fail the caller: mirror errors are logged and
// swallowed so reporting lag cannot block code issuance
type RecorderPort interface {
	CodeIssued(ctx context.Context, ev CodeIssued)
	SamplingDecision(ctx context.Context, ev SamplingDecision)
}
