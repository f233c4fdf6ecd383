// Package domain holds DTOs and contracts for analysis requests and their lots
package domain

import "time"

// LotInput is one lot declared with a demande
type LotInput struct {
	LotNumber string `json:"lot_number" validate:"required,min=1,max=40" example:"L-001"`

	// Product overrides the demande product for this lot when set
	Product string `json:"product,omitempty" validate:"omitempty,max=80" example:"Café"`
}

// CreateInput registers a demande together with its lots
type CreateInput struct {
	Reference string     `json:"reference" validate:"required,min=1,max=40" example:"DEM-2026-001"`
	Applicant string     `json:"applicant" validate:"required,min=1,max=120" example:"Société Cacao SA"`
	Product   string     `json:"product" validate:"required,min=1,max=80" example:"Cacao"`
	Lots      []LotInput `json:"lots" validate:"required,min=1,max=500,dive"`
}

// Demande is an authority-issued analysis request
type Demande struct {
	ID        string    `json:"id"`
	Reference string    `json:"reference" example:"DEM-2026-001"`
	Applicant string    `json:"applicant" example:"Société Cacao SA"`
	Product   string    `json:"product" example:"Cacao"`
	CreatedAt time.Time `json:"created_at"`
	Lots      []Lot     `json:"lots,omitempty"`
}

// Lot is a physical batch tied to a demande
type Lot struct {
	LotNumber string `json:"lot_number" example:"L-001"`
	DemandeID string `json:"demande_id"`
	Product   string `json:"product" example:"Cacao"`
	Sampled   bool   `json:"sampled"`
	Codified  bool   `json:"codified"`
}
