// Package service contains the lot codification workflows
package service

import (
	"context"
	"errors"
	"time"

	"qclab/internal/core/normalize"
	"qclab/internal/modkit/repokit"
	perr "qclab/internal/platform/errors"
	"qclab/internal/services/api/codification/domain"
	"qclab/internal/services/api/codification/repo"
	daycoderepo "qclab/internal/services/api/daycode/repo"
	auditdomain "qclab/internal/services/audit/domain"
)

// Service defines the service contract for the codification engine
type Service interface{ domain.ServicePort }

// Svc implements the Service interface.
// Every issuance runs its gate checks, the counter increment and the
// code insert inside one transaction so concurrent requests can neither
// mint duplicate values nor double-issue a first code
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	seq    repokit.Binder[daycoderepo.Sequencer]
	db     repokit.TxRunner
	audit  auditdomain.RecorderPort

	now func() time.Time
}

// New creates a new codification service. audit may be nil
func New(
	db repokit.TxRunner,
	binder repokit.Binder[repo.Repo],
	seq repokit.Binder[daycoderepo.Sequencer],
	audit auditdomain.RecorderPort,
) *Svc {
	if db == nil {
		panic("codification.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("codification.Service requires a non nil Repo binder")
	}
	if seq == nil {
		panic("codification.Service requires a non nil Sequencer binder")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		seq:    seq,
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

// IssueFirstCode mints the first secret code for a sampled lot and flips
// its codification state on
func (s *Svc) IssueFirstCode(ctx context.Context, in domain.IssueInput) (domain.SecretCode, error) {
	ln := normalize.LotNumber(in.LotNumber)

	var out domain.SecretCode
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.issueFirst(ctx, s.binder.Bind(q), s.seq.Bind(q), ln)
		return err
	})
	if err != nil {
		return domain.SecretCode{}, err
	}
	s.mirror(ctx, in.Operator, out)
	return out, nil
}

// IssueReprise mints a retest code for a lot that already has a first code
func (s *Svc) IssueReprise(ctx context.Context, in domain.IssueInput) (domain.SecretCode, error) {
	ln := normalize.LotNumber(in.LotNumber)

	var out domain.SecretCode
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.issueReprise(ctx, s.binder.Bind(q), s.seq.Bind(q), ln)
		return err
	})
	if err != nil {
		return domain.SecretCode{}, err
	}
	s.mirror(ctx, in.Operator, out)
	return out, nil
}

// IssueFirstCodesBatch issues first codes for every eligible lot in one
// transaction. Lots that already carry a first code are skipped, not
// failed, and consume no counter value. Any other failure aborts the batch
func (s *Svc) IssueFirstCodesBatch(ctx context.Context, in domain.BatchInput) (domain.BatchResult, error) {
	out := domain.BatchResult{Issued: []domain.SecretCode{}, Skipped: []string{}}

	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		sq := s.seq.Bind(q)
		for _, raw := range in.LotNumbers {
			ln := normalize.LotNumber(raw)
			code, err := s.issueFirst(ctx, r, sq, ln)
			if err != nil {
				if errors.Is(err, domain.ErrDuplicateFirstCode) {
					out.Skipped = append(out.Skipped, ln)
					continue
				}
				return err
			}
			out.Issued = append(out.Issued, code)
		}
		return nil
	})
	if err != nil {
		return domain.BatchResult{}, err
	}
	for _, code := range out.Issued {
		s.mirror(ctx, in.Operator, code)
	}
	return out, nil
}

// IssueReprisesBatch is the reprise analogue: lots without a first code
// are skipped, not failed
func (s *Svc) IssueReprisesBatch(ctx context.Context, in domain.BatchInput) (domain.BatchResult, error) {
	out := domain.BatchResult{Issued: []domain.SecretCode{}, Skipped: []string{}}

	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		sq := s.seq.Bind(q)
		for _, raw := range in.LotNumbers {
			ln := normalize.LotNumber(raw)
			code, err := s.issueReprise(ctx, r, sq, ln)
			if err != nil {
				if errors.Is(err, domain.ErrNoFirstCode) {
					out.Skipped = append(out.Skipped, ln)
					continue
				}
				return err
			}
			out.Issued = append(out.Issued, code)
		}
		return nil
	})
	if err != nil {
		return domain.BatchResult{}, err
	}
	for _, code := range out.Issued {
		s.mirror(ctx, in.Operator, code)
	}
	return out, nil
}

// LotCodes returns the codification view of one lot with its reprise count
func (s *Svc) LotCodes(ctx context.Context, lotNumber string) (domain.LotCodes, error) {
	ln := normalize.LotNumber(lotNumber)

	lot, found, err := s.Repo.Lot(ctx, ln)
	if err != nil {
		return domain.LotCodes{}, err
	}
	if !found {
		return domain.LotCodes{}, perr.NotFoundf("lot %q not found", ln)
	}
	rows, err := s.Repo.Codes(ctx, ln)
	if err != nil {
		return domain.LotCodes{}, err
	}

	out := domain.LotCodes{
		LotNumber: lot.LotNumber,
		Product:   lot.Product,
		Sampled:   lot.Sampled,
		Codified:  lot.Codified,
		Codes:     make([]domain.SecretCode, 0, len(rows)),
	}
	for _, row := range rows {
		if row.Kind == string(domain.KindReprise) {
			out.RepriseCount++
		}
		out.Codes = append(out.Codes, toCode(row))
	}
	return out, nil
}

// issueFirst runs the first-code gates and mint against one queryer.
// NextValue happens only after every gate passes so a skipped or failed
// lot never consumes a counter value
func (s *Svc) issueFirst(ctx context.Context, r repo.Repo, sq daycoderepo.Sequencer, ln string) (domain.SecretCode, error) {
	lot, found, err := r.Lot(ctx, ln)
	if err != nil {
		return domain.SecretCode{}, err
	}
	if !found {
		return domain.SecretCode{}, perr.NotFoundf("lot %q not found", ln)
	}
	if !lot.Sampled {
		return domain.SecretCode{}, domain.ErrLotNotSampled
	}
	has, err := r.HasFirstCode(ctx, ln)
	if err != nil {
		return domain.SecretCode{}, err
	}
	if has {
		return domain.SecretCode{}, domain.ErrDuplicateFirstCode
	}

	v, err := sq.NextValue(ctx)
	if err != nil {
		return domain.SecretCode{}, err
	}
	row := repo.CodeRow{
		CodeValue: v,
		Kind:      string(domain.KindFirstCode),
		LotNumber: ln,
		Product:   lot.Product,
		IssuedAt:  s.now().UTC(),
	}
	if err := r.InsertCode(ctx, row); err != nil {
		return domain.SecretCode{}, err
	}
	if err := r.MarkCodified(ctx, ln); err != nil {
		return domain.SecretCode{}, err
	}
	return toCode(row), nil
}

func (s *Svc) issueReprise(ctx context.Context, r repo.Repo, sq daycoderepo.Sequencer, ln string) (domain.SecretCode, error) {
	lot, found, err := r.Lot(ctx, ln)
	if err != nil {
		return domain.SecretCode{}, err
	}
	if !found {
		return domain.SecretCode{}, perr.NotFoundf("lot %q not found", ln)
	}
	has, err := r.HasFirstCode(ctx, ln)
	if err != nil {
		return domain.SecretCode{}, err
	}
	if !has {
		return domain.SecretCode{}, domain.ErrNoFirstCode
	}
	n, err := r.RepriseCount(ctx, ln)
	if err != nil {
		return domain.SecretCode{}, err
	}

	v, err := sq.NextValue(ctx)
	if err != nil {
		return domain.SecretCode{}, err
	}
	row := repo.CodeRow{
		CodeValue:     v,
		Kind:          string(domain.KindReprise),
		LotNumber:     ln,
		Product:       lot.Product,
		RepriseNumber: n + 1,
		IssuedAt:      s.now().UTC(),
	}
	if err := r.InsertCode(ctx, row); err != nil {
		return domain.SecretCode{}, err
	}
	return toCode(row), nil
}

// mirror reports issuance to the audit recorder after commit
func (s *Svc) mirror(ctx context.Context, operator string, code domain.SecretCode) {
	if s.audit == nil {
		return
	}
	s.audit.CodeIssued(ctx, auditdomain.CodeIssued{
		CodeValue: code.CodeValue,
		Kind:      string(code.Kind),
		LotNumber: code.LotNumber,
		Product:   code.Product,
		IssuedBy:  normalize.Operator(operator),
		IssuedAt:  code.IssuedAt,
	})
}

func toCode(row repo.CodeRow) domain.SecretCode {
	return domain.SecretCode{
		CodeValue:     row.CodeValue,
		Kind:          domain.CodeKind(row.Kind),
		LotNumber:     row.LotNumber,
		Product:       row.Product,
		RepriseNumber: row.RepriseNumber,
		IssuedAt:      row.IssuedAt,
	}
}
