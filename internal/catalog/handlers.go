package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/common"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/i18n"
)

// Handler exposes the public catalog endpoints.
type Handler struct {
	Service *Service
}

// List handles GET /api/v1/products.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog service not configured", nil)
		return
	}
	lang := i18n.Parse(r.URL.Query().Get("lang"))
	products := h.Service.List()
	views := make([]View, len(products))
	for i, p := range products {
		views[i] = Localize(p, lang)
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": views})
}

// Detail handles GET /api/v1/products/{id}.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog service not configured", nil)
		return
	}
	lang := i18n.Parse(r.URL.Query().Get("lang"))
	p, ok := h.Service.Get(chi.URLParam(r, "id"))
	if !ok {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "product not found", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": Localize(p, lang)})
}
