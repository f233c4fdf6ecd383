// Package service contains the demande registration workflows
package service

import (
	"context"
	"time"

	"qclab/internal/core/normalize"
	"qclab/internal/modkit/repokit"
	perr "qclab/internal/platform/errors"
	"qclab/internal/services/api/demandes/domain"
	"qclab/internal/services/api/demandes/repo"

	"github.com/google/uuid"
)

// Service defines the service contract for demandes
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	now func() time.Time
}

// New creates a new demandes service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("demandes.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("demandes.Service requires a non nil Repo binder")
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

// Create registers a demande with its lots in one transaction.
// References and lot numbers are canonicalized so later lookups with
// accent or case variants address the same rows
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Demande, error) {
	ref := normalize.LotNumber(in.Reference)
	product := normalize.Label(in.Product)
	at := s.now().UTC()

	out := domain.Demande{
		ID:        uuid.NewString(),
		Reference: ref,
		Applicant: in.Applicant,
		Product:   product,
		CreatedAt: at,
	}

	lots := make([]repo.LotRow, 0, len(in.Lots))
	seen := map[string]bool{}
	for _, l := range in.Lots {
		ln := normalize.LotNumber(l.LotNumber)
		if ln == "" {
			return domain.Demande{}, perr.Validationf("blank lot number in demande %q", ref)
		}
		if seen[ln] {
			return domain.Demande{}, perr.Validationf("lot %q listed twice in demande %q", ln, ref)
		}
		seen[ln] = true

		p := product
		if l.Product != "" {
			p = normalize.Label(l.Product)
		}
		lots = append(lots, repo.LotRow{LotNumber: ln, DemandeID: out.ID, Product: p})
	}

	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		if err := r.InsertDemande(ctx, repo.DemandeRow{
			ID:        out.ID,
			Reference: out.Reference,
			Applicant: out.Applicant,
			Product:   out.Product,
			CreatedAt: at,
		}); err != nil {
			return err
		}
		for _, row := range lots {
			if err := r.InsertLot(ctx, row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Demande{}, err
	}

	out.Lots = make([]domain.Lot, 0, len(lots))
	for _, row := range lots {
		out.Lots = append(out.Lots, toLot(row))
	}
	return out, nil
}

// ByReference loads a demande and its lots
func (s *Svc) ByReference(ctx context.Context, reference string) (domain.Demande, error) {
	ref := normalize.LotNumber(reference)

	row, found, err := s.Repo.ByReference(ctx, ref)
	if err != nil {
		return domain.Demande{}, err
	}
	if !found {
		return domain.Demande{}, perr.NotFoundf("demande %q not found", ref)
	}
	lots, err := s.Repo.LotsByDemande(ctx, row.ID)
	if err != nil {
		return domain.Demande{}, err
	}

	out := domain.Demande{
		ID:        row.ID,
		Reference: row.Reference,
		Applicant: row.Applicant,
		Product:   row.Product,
		CreatedAt: row.CreatedAt,
		Lots:      make([]domain.Lot, 0, len(lots)),
	}
	for _, l := range lots {
		out.Lots = append(out.Lots, toLot(l))
	}
	return out, nil
}

// Lots lists the lots of a demande
func (s *Svc) Lots(ctx context.Context, reference string) ([]domain.Lot, error) {
	d, err := s.ByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	return d.Lots, nil
}

// Lot loads a single lot by lot number
func (s *Svc) Lot(ctx context.Context, lotNumber string) (domain.Lot, error) {
	ln := normalize.LotNumber(lotNumber)

	row, found, err := s.Repo.Lot(ctx, ln)
	if err != nil {
		return domain.Lot{}, err
	}
	if !found {
		return domain.Lot{}, perr.NotFoundf("lot %q not found", ln)
	}
	return toLot(row), nil
}

func toLot(row repo.LotRow) domain.Lot {
	return domain.Lot{
		LotNumber: row.LotNumber,
		DemandeID: row.DemandeID,
		Product:   row.Product,
		Sampled:   row.Sampled,
		Codified:  row.Codified,
	}
}
