// Package domain holds the events mirrored to the reporting store
package domain

import "time"

// CodeIssued is one secret code issuance, mirrored for lab dashboards
type CodeIssued struct {
	CodeValue int64
	Kind      string
	LotNumber string
	Product   string
	IssuedBy  string
	IssuedAt  time.Time
}

// SamplingDecision is one recorded sonder decision batch
type SamplingDecision struct {
	EventID    string
	Decision   string
	SonderID   string
	LotNumbers []string
	DecidedAt  time.Time
}
