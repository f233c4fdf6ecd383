// Package repo provides postgres access for the daily code sequencer
package repo

import (
	"context"
	"errors"
	"time"

	"qclab/internal/modkit/repokit"
	perr "qclab/internal/platform/errors"
	"qclab/internal/services/api/daycode/domain"

	"github.com/jackc/pgx/v5"
)

// Sequencer is the issuance seam shared with the codification engine.
// NextValue is a single conditional update so concurrent callers can
// never observe the same counter value
type Sequencer interface {
	NextValue(ctx context.Context) (int64, error)
}

// Repo defines the repository contract for the sequencer
type Repo interface {
	Sequencer

	// Active returns the current active row, found=false when none exists
	Active(ctx context.Context) (RowState, bool, error)

	// Activate inserts a fresh active row unless one already exists
	Activate(ctx context.Context, operator string, at time.Time) (bool, error)

	// Deactivate clears any active row; reports whether a row changed
	Deactivate(ctx context.Context) (bool, error)
}

// RowState is a day code row from the database
type RowState struct {
	Counter     int64
	ActivatedAt time.Time
	ActivatedBy string
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

func (r *queries) Active(ctx context.Context) (RowState, bool, error) {
	const sql = `
select counter, activated_at, activated_by
from day_codes
where active
limit 1
`
	var row RowState
	err := r.q.QueryRow(ctx, sql).Scan(&row.Counter, &row.ActivatedAt, &row.ActivatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RowState{}, false, nil
		}
		return RowState{}, false, perr.FromPostgres(err, "load active day code")
	}
	return row, true, nil
}

func (r *queries) Activate(ctx context.Context, operator string, at time.Time) (bool, error) {
	// the partial unique index on (active) where active is the backstop
	// against two concurrent activations racing past the NOT EXISTS
	const sql = `
insert into day_codes (active, counter, activated_at, activated_by)
select true, 0, $2, $1
where not exists (select 1 from day_codes where active)
`
	ct, err := r.q.Exec(ctx, sql, operator, at)
	if err != nil {
		if perr.IsDuplicateKey(err) {
			return false, nil
		}
		return false, perr.FromPostgres(err, "activate day code")
	}
	return ct.RowsAffected() == 1, nil
}

func (r *queries) Deactivate(ctx context.Context) (bool, error) {
	const sql = `
update day_codes
set active = false, counter = 0, activated_at = null, activated_by = null
where active
`
	ct, err := r.q.Exec(ctx, sql)
	if err != nil {
		return false, perr.FromPostgres(err, "deactivate day code")
	}
	return ct.RowsAffected() > 0, nil
}

// NextValue increments and returns the counter in one statement.
// The activated_at window re-checks expiry at the storage boundary so a
// stale-but-not-yet-reset row can never mint a value
func (r *queries) NextValue(ctx context.Context) (int64, error) {
	const sql = `
update day_codes
set counter = counter + 1
where active and activated_at > now() - interval '24 hours'
returning counter
`
	var v int64
	err := r.q.QueryRow(ctx, sql).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotActive
		}
		return 0, perr.FromPostgres(err, "next code value")
	}
	return v, nil
}
