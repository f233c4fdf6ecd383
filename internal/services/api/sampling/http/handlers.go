// Package http provides http transport for the sampling decision recorder
package http

import (
	stdhttp "net/http"

	"qclab/internal/modkit/httpkit"
	"qclab/internal/services/api/sampling/domain"
	svc "qclab/internal/services/api/sampling/service"
)

// Register mounts sampling endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.DecisionInput](r, "/decision", h.decision)
}

type handlers struct{ svc svc.Service }

// @Summary Record a sonder's sampling decision for a batch of lots
// @Tags Sampling
// @Accept json
// @Produce json
// @Param payload body domain.DecisionInput true "Decision"
// @Success 200 {object} domain.Receipt "ok"
// @Router /sampling/decision [post]
func (h *handlers) decision(r *stdhttp.Request, in domain.DecisionInput) (any, error) {
	return h.svc.RecordDecision(r.Context(), in)
}
