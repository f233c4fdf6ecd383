// Package domain holds DTOs and contracts for the lot codification engine
package domain

import (
	"time"

	perr "qclab/internal/platform/errors"
)

// CodeKind classifies a secret code
type CodeKind string

const (
	// KindFirstCode is the initial secret code issued for a lot
	KindFirstCode CodeKind = "FIRST_CODE"

	// KindReprise is a retest code issued after the first code exists
	KindReprise CodeKind = "REPRISE"
)

// Domain sentinels. Returned directly (or wrapped) so callers can errors.Is them
var (
	// ErrLotNotSampled is returned when codification is attempted on an unsampled lot
	ErrLotNotSampled = perr.New(perr.ErrorCodeConflict, "lot must be sampled before codification")

	// ErrDuplicateFirstCode is returned when a lot already carries a first code
	ErrDuplicateFirstCode = perr.New(perr.ErrorCodeConflict, "lot already has a first code; issue a reprise instead")

	// ErrNoFirstCode is returned when a reprise is requested before any first code
	ErrNoFirstCode = perr.New(perr.ErrorCodeConflict, "lot has no first code yet")
)

// IssueInput identifies the lot to codify
type IssueInput struct {
	LotNumber string `json:"lot_number" validate:"required,min=1,max=40" example:"L-001"`
	Operator  string `json:"operator,omitempty" validate:"omitempty,max=80" example:"alice"`
}

// BatchInput identifies the lots to codify in one pass
type BatchInput struct {
	LotNumbers []string `json:"lot_numbers" validate:"required,min=1,max=500,dive,required,max=40"`
	Operator   string   `json:"operator,omitempty" validate:"omitempty,max=80" example:"alice"`
}

// SecretCode is an issued anonymization token. Append-only once persisted
type SecretCode struct {
	CodeValue int64    `json:"code_value" example:"12"`
	Kind      CodeKind `json:"kind" example:"FIRST_CODE"`
	LotNumber string   `json:"lot_number" example:"L-001"`
	Product   string   `json:"product,omitempty" example:"Cacao"`

	// RepriseNumber is the 1-based reprise ordinal; zero for first codes
	RepriseNumber int64     `json:"reprise_number,omitempty" example:"0"`
	IssuedAt      time.Time `json:"issued_at"`
}

// BatchResult reports batch partial success: skipped lots are not failures
type BatchResult struct {
	Issued  []SecretCode `json:"issued"`
	Skipped []string     `json:"skipped"`
}

// LotCodes is the codification view of one lot
type LotCodes struct {
	LotNumber    string       `json:"lot_number" example:"L-001"`
	Product      string       `json:"product,omitempty" example:"Cacao"`
	Sampled      bool         `json:"sampled"`
	Codified     bool         `json:"codified"`
	RepriseCount int64        `json:"reprise_count"`
	Codes        []SecretCode `json:"codes"`
}
