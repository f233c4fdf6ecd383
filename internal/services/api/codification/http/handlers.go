// Package http provides http transport for the codification engine
package http

import (
	stdhttp "net/http"

	"qclab/internal/modkit/httpkit"
	"qclab/internal/services/api/codification/domain"
	svc "qclab/internal/services/api/codification/service"
)

// Register mounts codification endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.IssueInput](r, "/first", h.first)
	httpkit.PostJSON[domain.IssueInput](r, "/reprise", h.reprise)
	httpkit.PostJSON[domain.BatchInput](r, "/first/batch", h.firstBatch)
	httpkit.PostJSON[domain.BatchInput](r, "/reprise/batch", h.repriseBatch)
	httpkit.Get(r, "/lots/{lotNumber}", h.lotCodes)
}

type handlers struct{ svc svc.Service }

// @Summary Issue the first secret code for a sampled lot
// @Tags Codification
// @Accept json
// @Produce json
// @Param payload body domain.IssueInput true "Lot"
// @Success 200 {object} domain.SecretCode "ok"
// @Router /codification/first [post]
func (h *handlers) first(r *stdhttp.Request, in domain.IssueInput) (any, error) {
	return h.svc.IssueFirstCode(r.Context(), in)
}

// @Summary Issue a reprise code for an already codified lot
// @Tags Codification
// @Accept json
// @Produce json
// @Param payload body domain.IssueInput true "Lot"
// @Success 200 {object} domain.SecretCode "ok"
// @Router /codification/reprise [post]
func (h *handlers) reprise(r *stdhttp.Request, in domain.IssueInput) (any, error) {
	return h.svc.IssueReprise(r.Context(), in)
}

// @Summary Issue first codes for a batch of lots (partial success)
// @Tags Codification
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Lots"
// @Success 200 {object} domain.BatchResult "ok"
// @Router /codification/first/batch [post]
func (h *handlers) firstBatch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.IssueFirstCodesBatch(r.Context(), in)
}

// @Summary Issue reprise codes for a batch of lots (partial success)
// @Tags Codification
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Lots"
// @Success 200 {object} domain.BatchResult "ok"
// @Router /codification/reprise/batch [post]
func (h *handlers) repriseBatch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.IssueReprisesBatch(r.Context(), in)
}

// @Summary List a lot's secret codes and reprise count
// @Tags Codification
// @Produce json
// @Param lotNumber path string true "Lot number"
// @Success 200 {object} domain.LotCodes "ok"
// @Router /codification/lots/{lotNumber} [get]
func (h *handlers) lotCodes(r *stdhttp.Request) (any, error) {
	return h.svc.LotCodes(r.Context(), httpkit.Param(r, "lotNumber"))
}
