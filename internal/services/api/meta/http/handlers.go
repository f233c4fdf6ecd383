// Package http provides http transport for the meta endpoints
package http

import (
	stdhttp "net/http"

	"qclab/internal/modkit/httpkit"
	svc "qclab/internal/services/api/meta/service"
)

// Register mounts meta endpoints on the given router
func Register(r httpkit.Router, s *svc.Svc) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

type handlers struct{ svc *svc.Svc }

// @Summary Liveness probe
// @Tags Meta
// @Produce json
// @Success 200 {object} domain.Health "ok"
// @Router /meta/health [get]
func (h *handlers) health(r *stdhttp.Request) (any, error) {
	return h.svc.Health(r.Context()), nil
}

// @Summary Readiness probe with backend pings
// @Tags Meta
// @Produce json
// @Success 200 {object} domain.Ready "ok"
// @Failure 503 {object} domain.Ready "degraded"
// @Router /meta/ready [get]
func (h *handlers) ready(r *stdhttp.Request) (any, error) {
	out := h.svc.Ready(r.Context())
	if out.Status != "ok" {
		return httpkit.Response{Status: stdhttp.StatusServiceUnavailable, Body: out}, nil
	}
	return out, nil
}

// @Summary Build information
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(r *stdhttp.Request) (any, error) {
	return h.svc.Version(r.Context()), nil
}

// @Summary Service identity and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} domain.Service "ok"
// @Router /meta/service [get]
func (h *handlers) service(r *stdhttp.Request) (any, error) {
	return h.svc.Service(r.Context()), nil
}
