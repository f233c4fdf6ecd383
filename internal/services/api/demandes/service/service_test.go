package service

import (
	"context"
	"testing"
	"time"

	"qclab/internal/modkit/repokit"
	perr "qclab/internal/platform/errors"
	"qclab/internal/services/api/demandes/domain"
	"qclab/internal/services/api/demandes/repo"
)

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

type memRepo struct {
	demandes map[string]repo.DemandeRow
	lots     map[string]repo.LotRow
}

func newMemRepo() *memRepo {
	return &memRepo{demandes: map[string]repo.DemandeRow{}, lots: map[string]repo.LotRow{}}
}

func (m *memRepo) InsertDemande(_ context.Context, row repo.DemandeRow) error {
	if _, ok := m.demandes[row.Reference]; ok {
		return perr.Conflictf("demande %q already exists", row.Reference)
	}
	m.demandes[row.Reference] = row
	return nil
}

func (m *memRepo) InsertLot(_ context.Context, row repo.LotRow) error {
	if _, ok := m.lots[row.LotNumber]; ok {
		return perr.Conflictf("lot %q already exists", row.LotNumber)
	}
	m.lots[row.LotNumber] = row
	return nil
}

func (m *memRepo) ByReference(_ context.Context, ref string) (repo.DemandeRow, bool, error) {
	row, ok := m.demandes[ref]
	return row, ok, nil
}

func (m *memRepo) LotsByDemande(_ context.Context, id string) ([]repo.LotRow, error) {
	var out []repo.LotRow
	for _, l := range m.lots {
		if l.DemandeID == id {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memRepo) Lot(_ context.Context, ln string) (repo.LotRow, bool, error) {
	row, ok := m.lots[ln]
	return row, ok, nil
}

func newTestSvc(t *testing.T) (*Svc, *memRepo) {
	t.Helper()
	m := newMemRepo()
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return m })
	now := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)
	svc := New(fakeDB{}, binder).WithClock(func() time.Time { return now })
	return svc, m
}

// Creating a demande canonicalizes references, lot numbers and labels
func TestCreateNormalizes(t *testing.T) {
	t.Parallel()
	svc, m := newTestSvc(t)
	ctx := context.Background()

	d, err := svc.Create(ctx, domain.CreateInput{
		Reference: " dem-2026-001 ",
		Applicant: "Société Cacao SA",
		Product:   "CAFÉ",
		Lots: []domain.LotInput{
			{LotNumber: "l-001"},
			{LotNumber: "L-002", Product: "cacao"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.Reference != "DEM-2026-001" {
		t.Fatalf("reference = %q", d.Reference)
	}
	if d.Product != "Cafe" {
		t.Fatalf("product = %q", d.Product)
	}
	if len(d.Lots) != 2 {
		t.Fatalf("lots = %+v", d.Lots)
	}
	if _, ok := m.lots["L-001"]; !ok {
		t.Fatalf("lot L-001 not stored: %+v", m.lots)
	}
	if got := m.lots["L-002"].Product; got != "Cacao" {
		t.Fatalf("lot product = %q, want Cacao", got)
	}
}

// A lot listed twice in one demande is a validation error
func TestCreateRejectsDuplicateLots(t *testing.T) {
	t.Parallel()
	svc, _ := newTestSvc(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateInput{
		Reference: "DEM-1",
		Applicant: "x",
		Product:   "Cacao",
		Lots: []domain.LotInput{
			{LotNumber: "L-001"},
			{LotNumber: " l-001 "},
		},
	})
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("code = %v, want validation", perr.CodeOf(err))
	}
}

// Lookups accept accent and case variants of the stored keys
func TestLookupVariants(t *testing.T) {
	t.Parallel()
	svc, _ := newTestSvc(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.CreateInput{
		Reference: "DEM-1",
		Applicant: "x",
		Product:   "Cacao",
		Lots:      []domain.LotInput{{LotNumber: "L-001"}},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	d, err := svc.ByReference(ctx, "dem-1")
	if err != nil {
		t.Fatalf("by reference: %v", err)
	}
	if len(d.Lots) != 1 {
		t.Fatalf("lots = %+v", d.Lots)
	}

	l, err := svc.Lot(ctx, " l-001 ")
	if err != nil {
		t.Fatalf("lot: %v", err)
	}
	if l.LotNumber != "L-001" || l.Sampled || l.Codified {
		t.Fatalf("unexpected lot: %+v", l)
	}
}

// Missing rows map to not found
func TestLookupNotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newTestSvc(t)
	ctx := context.Background()

	if _, err := svc.ByReference(ctx, "DEM-404"); perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("demande code = %v, want not found", perr.CodeOf(err))
	}
	if _, err := svc.Lot(ctx, "L-404"); perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("lot code = %v, want not found", perr.CodeOf(err))
	}
}
