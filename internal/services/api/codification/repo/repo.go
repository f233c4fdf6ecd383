// Package repo provides postgres access for the codification engine
package repo

import (
	"context"
	"errors"
	"time"

	"qclab/internal/modkit/repokit"
	perr "qclab/internal/platform/errors"
	"qclab/internal/services/api/codification/domain"

	"github.com/jackc/pgx/v5"
)

// Repo defines the repository contract for the codification engine
type Repo interface {
	// Lot loads the codification view of a lot, found=false when unknown
	Lot(ctx context.Context, lotNumber string) (LotRow, bool, error)

	// HasFirstCode reports whether a FIRST_CODE exists for the lot
	HasFirstCode(ctx context.Context, lotNumber string) (bool, error)

	// RepriseCount counts existing REPRISE codes for the lot
	RepriseCount(ctx context.Context, lotNumber string) (int64, error)

	// InsertCode appends a secret code row
	InsertCode(ctx context.Context, row CodeRow) error

	// MarkCodified flips the lot codification state on
	MarkCodified(ctx context.Context, lotNumber string) error

	// Codes lists a lot's codes ordered by issuance
	Codes(ctx context.Context, lotNumber string) ([]CodeRow, error)
}

// LotRow is the lot state relevant to codification
type LotRow struct {
	LotNumber string
	Product   string
	Sampled   bool
	Codified  bool
}

// CodeRow is a secret code row
type CodeRow struct {
	CodeValue     int64
	Kind          string
	LotNumber     string
	Product       string
	RepriseNumber int64
	IssuedAt      time.Time
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

func (r *queries) Lot(ctx context.Context, lotNumber string) (LotRow, bool, error) {
	const sql = `
select lot_number, product, sampled, codified
from lots
where lot_number = $1
`
	var row LotRow
	err := r.q.QueryRow(ctx, sql, lotNumber).Scan(&row.LotNumber, &row.Product, &row.Sampled, &row.Codified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return LotRow{}, false, nil
		}
		return LotRow{}, false, perr.FromPostgres(err, "load lot")
	}
	return row, true, nil
}

func (r *queries) HasFirstCode(ctx context.Context, lotNumber string) (bool, error) {
	const sql = `
select exists (
  select 1 from secret_codes
  where lot_number = $1 and kind = 'FIRST_CODE'
)
`
	var has bool
	if err := r.q.QueryRow(ctx, sql, lotNumber).Scan(&has); err != nil {
		return false, perr.FromPostgres(err, "check first code")
	}
	return has, nil
}

func (r *queries) RepriseCount(ctx context.Context, lotNumber string) (int64, error) {
	const sql = `
select count(*) from secret_codes
where lot_number = $1 and kind = 'REPRISE'
`
	var n int64
	if err := r.q.QueryRow(ctx, sql, lotNumber).Scan(&n); err != nil {
		return 0, perr.FromPostgres(err, "count reprises")
	}
	return n, nil
}

// InsertCode appends a code row. The partial unique index on
// (lot_number) where kind = 'FIRST_CODE' backstops the one-first-code
// rule under concurrent issuance
func (r *queries) InsertCode(ctx context.Context, row CodeRow) error {
	const sql = `
insert into secret_codes (code_value, kind, lot_number, product, reprise_number, issued_at)
values ($1, $2, $3, $4, $5, $6)
`
	_, err := r.q.Exec(ctx, sql,
		row.CodeValue, row.Kind, row.LotNumber, row.Product, row.RepriseNumber, row.IssuedAt,
	)
	if err != nil {
		if perr.IsDuplicateKey(err) {
			return domain.ErrDuplicateFirstCode
		}
		return perr.FromPostgres(err, "insert secret code")
	}
	return nil
}

func (r *queries) MarkCodified(ctx context.Context, lotNumber string) error {
	const sql = `update lots set codified = true where lot_number = $1`
	if _, err := r.q.Exec(ctx, sql, lotNumber); err != nil {
		return perr.FromPostgres(err, "mark lot codified")
	}
	return nil
}

func (r *queries) Codes(ctx context.Context, lotNumber string) ([]CodeRow, error) {
	const sql = `
select code_value, kind, lot_number, product, reprise_number, issued_at
from secret_codes
where lot_number = $1
order by issued_at, code_value
`
	rows, err := r.q.Query(ctx, sql, lotNumber)
	if err != nil {
		return nil, perr.FromPostgres(err, "list secret codes")
	}
	defer rows.Close()

	var out []CodeRow
	for rows.Next() {
		var row CodeRow
		if err := rows.Scan(
			&row.CodeValue, &row.Kind, &row.LotNumber, &row.Product, &row.RepriseNumber, &row.IssuedAt,
		); err != nil {
			return nil, perr.FromPostgres(err, "scan secret code")
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgres(err, "iterate secret codes")
	}
	return out, nil
}
