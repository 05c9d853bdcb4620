package shipping

import (
	"net/http"

	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/common"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/i18n"
)

// Handler exposes the public shipping options endpoint.
type Handler struct {
	Rates map[Method]Rate
}

// List handles GET /api/v1/shipping/options.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	lang := i18n.Parse(r.URL.Query().Get("lang"))
	common.JSON(w, http.StatusOK, map[string]any{"data": Options(h.Rates, lang)})
}
