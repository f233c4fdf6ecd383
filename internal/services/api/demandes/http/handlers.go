// Package http provides http transport for demandes
package http

import (
	stdhttp "net/http"

	"qclab/internal/modkit/httpkit"
	"qclab/internal/services/api/demandes/domain"
	svc "qclab/internal/services/api/demandes/service"
)

// Register mounts demande endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Get(r, "/lots/{lotNumber}", h.lot)
	httpkit.Get(r, "/{reference}", h.byReference)
	httpkit.Get(r, "/{reference}/lots", h.lots)
}

type handlers struct{ svc svc.Service }

// @Summary Register a demande with its lots
// @Tags Demandes
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Demande"
// @Success 201 {object} domain.Demande "created"
// @Router /demandes [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	d, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(d), nil
}

// @Summary Load a demande and its lots
// @Tags Demandes
// @Produce json
// @Param reference path string true "Demande reference"
// @Success 200 {object} domain.Demande "ok"
// @Router /demandes/{reference} [get]
func (h *handlers) byReference(r *stdhttp.Request) (any, error) {
	return h.svc.ByReference(r.Context(), httpkit.Param(r, "reference"))
}

// @Summary List the lots of a demande
// @Tags Demandes
// @Produce json
// @Param reference path string true "Demande reference"
// @Success 200 {array} domain.Lot "ok"
// @Router /demandes/{reference}/lots [get]
func (h *handlers) lots(r *stdhttp.Request) (any, error) {
	return h.svc.Lots(r.Context(), httpkit.Param(r, "reference"))
}

// @Summary Load a single lot by lot number
// @Tags Demandes
// @Produce json
// @Param lotNumber path string true "Lot number"
// @Success 200 {object} domain.Lot "ok"
// @Router /demandes/lots/{lotNumber} [get]
func (h *handlers) lot(r *stdhttp.Request) (any, error) {
	return h.svc.Lot(r.Context(), httpkit.Param(r, "lotNumber"))
}
