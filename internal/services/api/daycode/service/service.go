// Package service contains the daily code sequencer workflows
package service

import (
	"context"
	"time"

	"qclab/internal/core/normalize"
	"qclab/internal/modkit/repokit"
	ptime "qclab/internal/platform/time"
	"qclab/internal/services/api/daycode/domain"
	"qclab/internal/services/api/daycode/repo"
)

// Service defines the service contract for the sequencer
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	// now is an injectable clock so the 24h expiry is testable
	now func() time.Time
}

// New creates a new sequencer service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("daycode.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("daycode.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		now:    time.Now,
	}
}

// WithClock overrides the service clock (tests)
func (s *Svc) WithClock(now func() time.Time) *Svc {
	s.now = now
	return s
}

func (s *Svc) expired(activatedAt time.Time) bool {
	return s.now().Sub(activatedAt) >= domain.Expiry
}

// Activate starts a fresh day code. Fails with ErrAlreadyActive while a
// non-expired day code exists; an expired one is swept first
func (s *Svc) Activate(ctx context.Context, in domain.ActivateInput) (domain.Snapshot, error) {
	operator := normalize.Operator(in.Operator)
	at := s.now().UTC()

	var out domain.Snapshot
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		row, found, err := r.Active(ctx)
		if err != nil {
			return err
		}
		if found {
			if !s.expired(row.ActivatedAt) {
				return domain.ErrAlreadyActive
			}
			if _, err := r.Deactivate(ctx); err != nil {
				return err
			}
		}

		ok, err := r.Activate(ctx, operator, at)
		if err != nil {
			return err
		}
		if !ok {
			// lost a race with a concurrent activation
			return domain.ErrAlreadyActive
		}

		out = domain.Snapshot{
			Status:      domain.StateActive,
			Counter:     0,
			ActivatedAt: ptime.Ptr(at),
			ActivatedBy: operator,
		}
		return nil
	})
	if err != nil {
		return domain.Snapshot{}, err
	}
	return out, nil
}

// CurrentState reads the sequencer state, lazily sweeping an expired day code.
// Expiry is a pure function of (now, activatedAt); no background timer exists
func (s *Svc) CurrentState(ctx context.Context) (domain.Snapshot, error) {
	row, found, err := s.Repo.Active(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if !found {
		return inactive(), nil
	}
	if s.expired(row.ActivatedAt) {
		if _, err := s.Repo.Deactivate(ctx); err != nil {
			return domain.Snapshot{}, err
		}
		return inactive(), nil
	}
	return domain.Snapshot{
		Status:      domain.StateActive,
		Counter:     row.Counter,
		ActivatedAt: ptime.Ptr(row.ActivatedAt),
		ActivatedBy: row.ActivatedBy,
	}, nil
}

// Reset forces the sequencer inactive. Idempotent
func (s *Svc) Reset(ctx context.Context, in domain.ResetInput) (domain.Snapshot, error) {
	if _, err := s.Repo.Deactivate(ctx); err != nil {
		return domain.Snapshot{}, err
	}
	return inactive(), nil
}

// NextValue mints the next code value; the increment is atomic in the repo
func (s *Svc) NextValue(ctx context.Context) (int64, error) {
	return s.Repo.NextValue(ctx)
}

func inactive() domain.Snapshot {
	return domain.Snapshot{Status: domain.StateInactive, Counter: 0}
}
