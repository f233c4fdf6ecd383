// Package domain holds DTOs and contracts for the daily code sequencer
package domain

import (
	"time"

	perr "qclab/internal/platform/errors"
)

// Expiry is how long an activated day code stays usable
const Expiry = 24 * time.Hour

// Domain sentinels. Returned directly (or wrapped) so callers can errors.Is them
var (
	// ErrAlreadyActive is returned when activation is attempted while a day code is active
	ErrAlreadyActive = perr.New(perr.ErrorCodeConflict, "day code already active; reset it first")

	// ErrNotActive is returned when a code value is requested while no day code is active
	ErrNotActive = perr.New(perr.ErrorCodeConflict, "no active day code; activate one first")
)

// State is the lifecycle status of the day code
type State string

const (
	// StateActive means codes can be issued
	StateActive State = "ACTIVE"

	// StateInactive means no code issuance is possible
	StateInactive State = "INACTIVE"
)

// ActivateInput carries the operator activating the day code
type ActivateInput struct {
	Operator string `json:"operator" validate:"required,min=1,max=80" example:"alice"`
}

// ResetInput carries the operator forcing a reset
type ResetInput struct {
	Operator string `json:"operator" validate:"required,min=1,max=80" example:"alice"`
}

// Snapshot is the externally visible sequencer state
type Snapshot struct {
	Status      State      `json:"status" example:"ACTIVE"`
	Counter     int64      `json:"counter" example:"12"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	ActivatedBy string     `json:"activated_by,omitempty" example:"alice"`
}

// Active reports whether the snapshot is usable for issuance
func (s Snapshot) Active() bool { return s.Status == StateActive }
