// Package service implements the best-effort audit mirror
package service

import (
	"context"

	"qclab/internal/platform/logger"
	"qclab/internal/services/audit/domain"
	"qclab/internal/services/audit/repo"
)

// Service defines the service contract for the mirror
type Service interface{ domain.RecorderPort }

// Svc mirrors events to the reporting store. A nil repo makes every
// call a no-op so callers never branch on whether the mirror is enabled
type Svc struct {
	repo repo.Repo
	log  logger.Logger
}

// New creates a recorder. repo may be nil (mirror disabled)
func New(r repo.Repo, log logger.Logger) *Svc {
	return &Svc{repo: r, log: log.With().Str("component", "audit").Logger()}
}

// CodeIssued mirrors an issuance event; failures are logged, never returned
func (s *Svc) CodeIssued(ctx context.Context, ev domain.CodeIssued) {
	if s.repo == nil {
		return
	}
	if err := s.repo.InsertCodeIssued(ctx, ev); err != nil {
		s.log.Warn().
			Err(err).
			Str("lot_number", ev.LotNumber).
			Int64("code_value", ev.CodeValue).
			Msg("audit mirror write failed")
	}
}

// SamplingDecision mirrors a decision batch; failures are logged, never returned
func (s *Svc) SamplingDecision(ctx context.Context, ev domain.SamplingDecision) {
	if s.repo == nil {
		return
	}
	if err := s.repo.InsertSamplingDecision(ctx, ev); err != nil {
		s.log.Warn().
			Err(err).
			Str("event_id", ev.EventID).
			Msg("audit mirror write failed")
	}
}
