package domain

import "context"

// ServicePort defines the service contract for demandes
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Demande, error)
	ByReference(ctx context.Context, reference string) (Demande, error)
	Lots(ctx context.Context, reference string) ([]Lot, error)
	Lot(ctx context.Context, lotNumber string) (Lot, error)
}
