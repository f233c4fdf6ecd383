// Package repo provides postgres access for the sampling decision recorder
package repo

import (
	"context"
	"time"

	"qclab/internal/modkit/repokit"
	perr "qclab/internal/platform/errors"
)

// Repo defines the repository contract for the sampling recorder
type Repo interface {
	// SetSampled flips the sampling state on every listed lot and
	// reports how many rows changed
	SetSampled(ctx context.Context, lotNumbers []string, sampled bool) (int64, error)

	// InsertEvent appends one sampling event row
	InsertEvent(ctx context.Context, row EventRow) error
}

// EventRow is an auditable sampling event
type EventRow struct {
	ID        string
	SonderID  string
	LotCount  int
	DecidedAt time.Time
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

func (r *queries) SetSampled(ctx context.Context, lotNumbers []string, sampled bool) (int64, error) {
	const sql = `update lots set sampled = $2 where lot_number = any($1)`
	ct, err := r.q.Exec(ctx, sql, lotNumbers, sampled)
	if err != nil {
		return 0, perr.FromPostgres(err, "set sampling state")
	}
	return ct.RowsAffected(), nil
}

func (r *queries) InsertEvent(ctx context.Context, row EventRow) error {
	const sql = `
insert into sampling_events (id, sonder_id, lot_count, decided_at)
values ($1, $2, $3, $4)
`
	if _, err := r.q.Exec(ctx, sql, row.ID, row.SonderID, row.LotCount, row.DecidedAt); err != nil {
		return perr.FromPostgres(err, "insert sampling event")
	}
	return nil
}
