// Package http provides http transport for the daily code sequencer
package http

import (
	stdhttp "net/http"

	"qclab/internal/modkit/httpkit"
	"qclab/internal/services/api/daycode/domain"
	svc "qclab/internal/services/api/daycode/service"
)

// Register mounts daycode endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ActivateInput](r, "/activate", h.activate)
	httpkit.Get(r, "/state", h.state)
	httpkit.PostJSON[domain.ResetInput](r, "/reset", h.reset)
}

type handlers struct{ svc svc.Service }

// @Summary Activate the day code
// @Tags Daycode
// @Accept json
// @Produce json
// @Param payload body domain.ActivateInput true "Operator"
// @Success 200 {object} domain.Snapshot "ok"
// @Router /daycode/activate [post]
func (h *handlers) activate(r *stdhttp.Request, in domain.ActivateInput) (any, error) {
	return h.svc.Activate(r.Context(), in)
}

// @Summary Read the current day code state (lazy expiry applied)
// @Tags Daycode
// @Produce json
// @Success 200 {object} domain.Snapshot "ok"
// @Router /daycode/state [get]
func (h *handlers) state(r *stdhttp.Request) (any, error) {
	return h.svc.CurrentState(r.Context())
}

// @Summary Reset the day code
// @Tags Daycode
// @Accept json
// @Produce json
// @Param payload body domain.ResetInput true "Operator"
// @Success 200 {object} domain.Snapshot "ok"
// @Router /daycode/reset [post]
func (h *handlers) reset(r *stdhttp.Request, in domain.ResetInput) (any, error) {
	return h.svc.Reset(r.Context(), in)
}
