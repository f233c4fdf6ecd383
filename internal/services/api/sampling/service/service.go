// Package service contains the sampling decision workflows
package service

import (
	"context"
	"time"

	"qclab/internal/core/normalize"
	"qclab/internal/modkit/repokit"
	perr "qclab/internal/platform/errors"
	"qclab/internal/services/api/sampling/domain"
	"qclab/internal/services/api/sampling/repo"
	auditdomain "qclab/internal/services/audit/domain"

	"github.com/google/uuid"
)

// Service defines the service contract for the sampling recorder
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	audit  auditdomain.RecorderPort

	now func() time.Time
}

// New creates a new sampling service. audit may be nil
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], audit auditdomain.RecorderPort) *Svc {
	if db == nil {
		panic("sampling.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("sampling.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		audit:  audit,
		now:    time.Now,
	}
}

// WithClock overrides the service clock (tests)
func (s *Svc) WithClock(now func() time.Time) *Svc {
	s.now = now
	return s
}

// RecordDecision applies one sonder visit to a batch of lots. A YES
// decision requires a sonder identity and records a sampling event; a NO
// decision only clears the sampling state. Every listed lot must exist
func (s *Svc) RecordDecision(ctx context.Context, in domain.DecisionInput) (domain.Receipt, error) {
	sonder := normalize.Operator(in.SonderID)
	if in.Decision == domain.DecisionYes && sonder == "" {
		return domain.Receipt{}, domain.ErrMissingSonder
	}

	lots := make([]string, 0, len(in.LotNumbers))
	seen := map[string]bool{}
	for _, raw := range in.LotNumbers {
		ln := normalize.LotNumber(raw)
		if ln == "" || seen[ln] {
			continue
		}
		seen[ln] = true
		lots = append(lots, ln)
	}
	if len(lots) == 0 {
		return domain.Receipt{}, perr.Validationf("no usable lot numbers in decision")
	}

	at := s.now().UTC()
	out := domain.Receipt{
		Decision:   in.Decision,
		LotNumbers: lots,
		DecidedAt:  at,
	}

	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		n, err := r.SetSampled(ctx, lots, in.Decision == domain.DecisionYes)
		if err != nil {
			return err
		}
		if n != int64(len(lots)) {
			return perr.NotFoundf("decision names %d lots but only %d exist", len(lots), n)
		}

		if in.Decision == domain.DecisionYes {
			out.EventID = uuid.NewString()
			out.SonderID = sonder
			return r.InsertEvent(ctx, repo.EventRow{
				ID:        out.EventID,
				SonderID:  sonder,
				LotCount:  len(lots),
				DecidedAt: at,
			})
		}
		return nil
	})
	if err != nil {
		return domain.Receipt{}, err
	}

	// only YES decisions are mirrored, matching the persistence asymmetry
	if s.audit != nil && in.Decision == domain.DecisionYes {
		s.audit.SamplingDecision(ctx, auditdomain.SamplingDecision{
			EventID:    out.EventID,
			Decision:   string(out.Decision),
			SonderID:   sonder,
			LotNumbers: lots,
			DecidedAt:  at,
		})
	}
	return out, nil
}
