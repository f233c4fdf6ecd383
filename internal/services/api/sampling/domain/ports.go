package domain

import "context"

// ServicePort defines the service contract for the sampling recorder
type ServicePort interface {
	RecordDecision(ctx context.Context, in DecisionInput) (Receipt, error)
}
