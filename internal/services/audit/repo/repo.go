// Package repo writes audit events to the columnar reporting store
package repo

import (
	"context"
	"strings"

	"qclab/internal/platform/store"
	str "qclab/internal/platform/strings"
	"qclab/internal/services/audit/domain"
)

// Repo defines the audit write contract
type Repo interface {
	InsertCodeIssued(ctx context.Context, ev domain.CodeIssued) error
	InsertSamplingDecision(ctx context.Context, ev domain.SamplingDecision) error
}

// CH implements Repo against ClickHouse
type CH struct{ ch store.Clickhouse }

// NewCH creates a ClickHouse-backed audit repo
func NewCH(ch store.Clickhouse) *CH { return &CH{ch: ch} }

// InsertCodeIssued mirrors one issuance row
func (r *CH) InsertCodeIssued(ctx context.Context, ev domain.CodeIssued) error {
	return r.ch.Insert(ctx, "code_issuance_events", [][]any{{
		ev.CodeValue,
		ev.Kind,
		ev.LotNumber,
		ev.Product,
		// operator is optional on issuance; blank becomes NULL
		str.SQLNull(ev.IssuedBy),
		ev.IssuedAt,
	}})
}

// InsertSamplingDecision mirrors one decision batch row.
// Lot numbers are flattened; the set is small (one sonder visit)
func (r *CH) InsertSamplingDecision(ctx context.Context, ev domain.SamplingDecision) error {
	return r.ch.Insert(ctx, "sampling_decision_events", [][]any{{
		ev.EventID,
		ev.Decision,
		ev.SonderID,
		uint32(len(ev.LotNumbers)),
		strings.Join(ev.LotNumbers, ","),
		ev.DecidedAt,
	}})
}
