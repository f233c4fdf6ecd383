package domain

import "context"

// ServicePort defines the service contract for the codification engine
type ServicePort interface {
	IssueFirstCode(ctx context.Context, in IssueInput) (SecretCode, error)
	IssueReprise(ctx context.Context, in IssueInput) (SecretCode, error)
	IssueFirstCodesBatch(ctx context.Context, in BatchInput) (BatchResult, error)
	IssueReprisesBatch(ctx context.Context, in BatchInput) (BatchResult, error)
	LotCodes(ctx context.Context, lotNumber string) (LotCodes, error)
}
