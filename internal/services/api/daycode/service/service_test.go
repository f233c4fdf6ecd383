package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"qclab/internal/modkit/repokit"
	"qclab/internal/platform/testkit"
	"qclab/internal/services/api/daycode/domain"
	"qclab/internal/services/api/daycode/repo"
)

// fakeDB satisfies repokit.TxRunner; queries go through the bound repo,
// so the queryer methods are never reached
type fakeDB struct{}

func (fakeDB) Exec(context.Context, string, ...any) (repokit.CommandTag, error) {
	panic("unexpected Exec")
}
func (fakeDB) Query(context.Context, string, ...any) (repokit.Rows, error) {
	panic("unexpected Query")
}
func (fakeDB) QueryRow(context.Context, string, ...any) repokit.Row {
	panic("unexpected QueryRow")
}
func (fakeDB) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error {
	return fn(fakeDB{})
}

// memRepo mirrors the day_codes row semantics in memory, including the
// expiry window check NextValue performs at the storage boundary
type memRepo struct {
	active  bool
	counter int64
	at      time.Time
	by      string

	deactivations int
	now           func() time.Time
}

func (m *memRepo) Active(context.Context) (repo.RowState, bool, error) {
	if !m.active {
		return repo.RowState{}, false, nil
	}
	return repo.RowState{Counter: m.counter, ActivatedAt: m.at, ActivatedBy: m.by}, true, nil
}

func (m *memRepo) Activate(_ context.Context, operator string, at time.Time) (bool, error) {
	if m.active {
		return false, nil
	}
	m.active = true
	m.counter = 0
	m.at = at
	m.by = operator
	return true, nil
}

func (m *memRepo) Deactivate(context.Context) (bool, error) {
	if !m.active {
		return false, nil
	}
	m.active = false
	m.counter = 0
	m.deactivations++
	return true, nil
}

func (m *memRepo) NextValue(context.Context) (int64, error) {
	if !m.active || m.now().Sub(m.at) >= domain.Expiry {
		return 0, domain.ErrNotActive
	}
	m.counter++
	return m.counter, nil
}

func newTestSvc(t *testing.T) (*Svc, *memRepo, *time.Time) {
	t.Helper()
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	m := &memRepo{now: func() time.Time { return now }}
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return m })
	svc := New(fakeDB{}, binder).WithClock(func() time.Time { return now })
	return svc, m, &now
}

// A second activation without reset or expiry must fail
func TestActivateTwice(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestSvc(t)
	ctx := context.Background()

	snap, err := svc.Activate(ctx, domain.ActivateInput{Operator: "Alice"})
	if err != nil {
		t.Fatalf("first activate: %v", err)
	}
	if snap.Status != domain.StateActive || snap.Counter != 0 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.ActivatedBy != "alice" {
		t.Fatalf("operator not canonicalized: %q", snap.ActivatedBy)
	}

	if _, err := svc.Activate(ctx, domain.ActivateInput{Operator: "bob"}); !errors.Is(err, domain.ErrAlreadyActive) {
		t.Fatalf("second activate = %v, want ErrAlreadyActive", err)
	}
}

// An expired day code is swept, so activation succeeds again
func TestActivateAfterExpiry(t *testing.T) {
	t.Parallel()
	svc, m, now := newTestSvc(t)
	ctx := context.Background()

	if _, err := svc.Activate(ctx, domain.ActivateInput{Operator: "alice"}); err != nil {
		t.Fatalf("activate: %v", err)
	}
	*now = now.Add(domain.Expiry + time.Minute)

	snap, err := svc.Activate(ctx, domain.ActivateInput{Operator: "bob"})
	if err != nil {
		t.Fatalf("activate after expiry: %v", err)
	}
	if snap.Counter != 0 || snap.ActivatedBy != "bob" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if m.deactivations != 1 {
		t.Fatalf("deactivations = %d, want 1", m.deactivations)
	}
}

// Reading state at activatedAt+24h+eps returns INACTIVE however often it is read
func TestCurrentStateExpiryIdempotent(t *testing.T) {
	t.Parallel()
	svc, m, now := newTestSvc(t)
	ctx := context.Background()

	if _, err := svc.Activate(ctx, domain.ActivateInput{Operator: "alice"}); err != nil {
		t.Fatalf("activate: %v", err)
	}
	*now = now.Add(domain.Expiry + time.Second)

	for i := 0; i < 3; i++ {
		snap, err := svc.CurrentState(ctx)
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if snap.Status != domain.StateInactive || snap.Counter != 0 {
			t.Fatalf("read %d: %+v, want inactive", i, snap)
		}
	}
	if m.deactivations != 1 {
		t.Fatalf("deactivations = %d, want 1", m.deactivations)
	}
}

// Values within one active period are exactly 1..N
func TestNextValueMonotone(t *testing.T) {
	t.Parallel()
	svc, _, now := newTestSvc(t)
	ctx := context.Background()

	if _, err := svc.NextValue(ctx); !errors.Is(err, domain.ErrNotActive) {
		t.Fatalf("inactive NextValue = %v, want ErrNotActive", err)
	}

	if _, err := svc.Activate(ctx, domain.ActivateInput{Operator: "alice"}); err != nil {
		t.Fatalf("activate: %v", err)
	}
	for want := int64(1); want <= 5; want++ {
		got, err := svc.NextValue(ctx)
		if err != nil {
			t.Fatalf("NextValue: %v", err)
		}
		if got != want {
			t.Fatalf("NextValue = %d, want %d", got, want)
		}
	}

	*now = now.Add(domain.Expiry)
	if _, err := svc.NextValue(ctx); !errors.Is(err, domain.ErrNotActive) {
		t.Fatalf("expired NextValue = %v, want ErrNotActive", err)
	}
}

// Reset is idempotent and always reports INACTIVE
func TestResetIdempotent(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestSvc(t)
	ctx := context.Background()

	if _, err := svc.Activate(ctx, domain.ActivateInput{Operator: "alice"}); err != nil {
		t.Fatalf("activate: %v", err)
	}
	for i := 0; i < 2; i++ {
		snap, err := svc.Reset(ctx, domain.ResetInput{Operator: "alice"})
		if err != nil {
			t.Fatalf("reset %d: %v", i, err)
		}
		if snap.Status != domain.StateInactive || snap.Counter != 0 {
			t.Fatalf("reset %d: %+v", i, snap)
		}
	}
}

// Constructor rejects missing wiring early
func TestNewPanicsOnNilDeps(t *testing.T) {
	t.Parallel()
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return &memRepo{} })
	testkit.MustPanic(t, func() { New(nil, binder) })
	testkit.MustPanic(t, func() { New(fakeDB{}, nil) })
}
