package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"qclab/internal/platform/logger"
	"qclab/internal/platform/testkit"
	"qclab/internal/services/audit/domain"
	"qclab/internal/services/audit/repo"
)

type memRepo struct {
	issued    []domain.CodeIssued
	decisions []domain.SamplingDecision
	fail      bool
}

func (m *memRepo) InsertCodeIssued(_ context.Context, ev domain.CodeIssued) error {
	if m.fail {
		return errors.New("mirror down")
	}
	m.issued = append(m.issued, ev)
	return nil
}

func (m *memRepo) InsertSamplingDecision(_ context.Context, ev domain.SamplingDecision) error {
	if m.fail {
		return errors.New("mirror down")
	}
	m.decisions = append(m.decisions, ev)
	return nil
}

var _ repo.Repo = (*memRepo)(nil)

// Events reach the repo when the mirror is enabled
func TestRecordsEvents(t *testing.T) {
	t.Parallel()
	m := &memRepo{}
	svc := New(m, *logger.Get())
	ctx := context.Background()

	svc.CodeIssued(ctx, domain.CodeIssued{CodeValue: 1, Kind: "FIRST_CODE", LotNumber: "L-001"})
	svc.SamplingDecision(ctx, domain.SamplingDecision{EventID: "e1", Decision: "YES", DecidedAt: time.Now()})

	if len(m.issued) != 1 || len(m.decisions) != 1 {
		t.Fatalf("issued=%d decisions=%d, want 1 each", len(m.issued), len(m.decisions))
	}
}

// Repo failures are swallowed; the caller never sees them
func TestSwallowsFailures(t *testing.T) {
	t.Parallel()
	svc := New(&memRepo{fail: true}, *logger.Get())
	ctx := context.Background()

	testkit.MustNotPanic(t, func() {
		svc.CodeIssued(ctx, domain.CodeIssued{CodeValue: 1})
		svc.SamplingDecision(ctx, domain.SamplingDecision{EventID: "e1"})
	})
}

// A nil repo degrades every call to a no-op
func TestNilRepoNoop(t *testing.T) {
	t.Parallel()
	svc := New(nil, *logger.Get())
	ctx := context.Background()

	testkit.MustNotPanic(t, func() {
		svc.CodeIssued(ctx, domain.CodeIssued{})
		svc.SamplingDecision(ctx, domain.SamplingDecision{})
	})
}
