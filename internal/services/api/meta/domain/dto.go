// Package domain holds DTOs for the meta endpoints
package domain

import "time"

// Health is the liveness payload
type Health struct {
	Status string `json:"status" example:"ok"`
}

// Ready is the readiness payload with one entry per backend check
type Ready struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks"`
}

// Service reports identity and uptime
type Service struct {
	Name      string    `json:"name" example:"qclab-api"`
	StartedAt time.Time `json:"started_at"`
	Uptime    string    `json:"uptime" example:"1h2m3s"`
}
