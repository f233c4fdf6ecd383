// Package repo provides postgres access for demandes and lots
package repo

import (
	"context"
	"errors"
	"time"

	"qclab/internal/modkit/repokit"
	perr "qclab/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

// Repo defines the repository contract for demandes
type Repo interface {
	InsertDemande(ctx context.Context, row DemandeRow) error
	InsertLot(ctx context.Context, row LotRow) error
	ByReference(ctx context.Context, reference string) (DemandeRow, bool, error)
	LotsByDemande(ctx context.Context, demandeID string) ([]LotRow, error)
	Lot(ctx context.Context, lotNumber string) (LotRow, bool, error)
}

// DemandeRow is a demande row
type DemandeRow struct {
	ID        string
	Reference string
	Applicant string
	Product   string
	CreatedAt time.Time
}

// LotRow is a lot row
type LotRow struct {
	LotNumber string
	DemandeID string
	Product   string
	Sampled   bool
	Codified  bool
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) InsertDemande(ctx context.Context, row DemandeRow) error {
	const sql = `
insert into demandes (id, reference, applicant, product, created_at)
values ($1, $2, $3, $4, $5)
`
	_, err := r.q.Exec(ctx, sql, row.ID, row.Reference, row.Applicant, row.Product, row.CreatedAt)
	if err != nil {
		if perr.IsDuplicateKey(err) {
			return perr.Conflictf("demande %q already exists", row.Reference)
		}
		return perr.FromPostgres(err, "insert demande")
	}
	return nil
}

func (r *queries) InsertLot(ctx context.Context, row LotRow) error {
	const sql = `
insert into lots (lot_number, demande_id, product, sampled, codified)
values ($1, $2, $3, false, false)
`
	_, err := r.q.Exec(ctx, sql, row.LotNumber, row.DemandeID, row.Product)
	if err != nil {
		if perr.IsDuplicateKey(err) {
			return perr.Conflictf("lot %q already exists", row.LotNumber)
		}
		return perr.FromPostgres(err, "insert lot")
	}
	return nil
}

func (r *queries) ByReference(ctx context.Context, reference string) (DemandeRow, bool, error) {
	const sql = `
select id, reference, applicant, product, created_at
from demandes
where reference = $1
`
	var row DemandeRow
	err := r.q.QueryRow(ctx, sql, reference).
		Scan(&row.ID, &row.Reference, &row.Applicant, &row.Product, &row.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DemandeRow{}, false, nil
		}
		return DemandeRow{}, false, perr.FromPostgres(err, "load demande")
	}
	return row, true, nil
}

func (r *queries) LotsByDemande(ctx context.Context, demandeID string) ([]LotRow, error) {
	const sql = `
select lot_number, demande_id, product, sampled, codified
from lots
where demande_id = $1
order by lot_number
`
	rows, err := r.q.Query(ctx, sql, demandeID)
	if err != nil {
		return nil, perr.FromPostgres(err, "list lots")
	}
	defer rows.Close()

	var out []LotRow
	for rows.Next() {
		var row LotRow
		if err := rows.Scan(&row.LotNumber, &row.DemandeID, &row.Product, &row.Sampled, &row.Codified); err != nil {
			return nil, perr.FromPostgres(err, "scan lot")
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgres(err, "iterate lots")
	}
	return out, nil
}

func (r *queries) Lot(ctx context.Context, lotNumber string) (LotRow, bool, error) {
	const sql = `
select lot_number, demande_id, product, sampled, codified
from lots
where lot_number = $1
`
	var row LotRow
	err := r.q.QueryRow(ctx, sql, lotNumber).
		Scan(&row.LotNumber, &row.DemandeID, &row.Product, &row.Sampled, &row.Codified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return LotRow{}, false, nil
		}
		return LotRow{}, false, perr.FromPostgres(err, "load lot")
	}
	return row, true, nil
}
