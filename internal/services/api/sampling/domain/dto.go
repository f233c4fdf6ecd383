// Package domain holds DTOs and contracts for the sampling decision recorder
package domain

import (
	"time"

	perr "qclab/internal/platform/errors"
)

// Decision is the sonder's yes/no outcome for a batch of lots
type Decision string

const (
	// DecisionYes marks the lots sampled and records a sampling event
	DecisionYes Decision = "YES"

	// DecisionNo marks the lots not sampled; no event is recorded
	DecisionNo Decision = "NO"
)

// ErrMissingSonder is returned when a YES decision carries no sonder identity
var ErrMissingSonder = perr.New(perr.ErrorCodeValidation, "a sonder identity is required for a YES decision")

// DecisionInput is one recorded sonder visit
type DecisionInput struct {
	LotNumbers []string `json:"lot_numbers" validate:"required,min=1,max=500,dive,required,max=40"`
	Decision   Decision `json:"decision" validate:"required,oneof=YES NO" example:"YES"`
	SonderID   string   `json:"sonder_id,omitempty" validate:"omitempty,max=80" example:"bob"`
}

// Receipt confirms a recorded decision. EventID is empty for NO decisions
type Receipt struct {
	EventID    string    `json:"event_id,omitempty"`
	Decision   Decision  `json:"decision" example:"YES"`
	SonderID   string    `json:"sonder_id,omitempty" example:"bob"`
	LotNumbers []string  `json:"lot_numbers"`
	DecidedAt  time.Time `json:"decided_at"`
}
