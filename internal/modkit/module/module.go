// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "qclab/internal/platform/net/http"
)

// Module defines the minimal contract used by modkit
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
