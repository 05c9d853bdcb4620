package quote

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/common"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/obs"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/shipping"
)

// Handler exposes the quote endpoints.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
	// RenderPDF turns a document view into PDF bytes. When unset or
	// failing, the document endpoint remains the fallback; export problems
	// never block the quote itself.
	RenderPDF func(DocumentView) ([]byte, error)
	Logger    zerolog.Logger
}

type previewRequest struct {
	ProductID      string `json:"productId" validate:"required"`
	Units          int    `json:"units"`
	ShippingMethod string `json:"shippingMethod"`
	Coupon         string `json:"coupon"`
}

type createRequest struct {
	ProductID      string `json:"productId" validate:"required"`
	Name           string `json:"name" validate:"required"`
	TaxID          string `json:"taxId" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Address        string `json:"address" validate:"required"`
	Units          int    `json:"units"`
	ShippingMethod string `json:"shippingMethod"`
	Coupon         string `json:"coupon"`
	Language       string `json:"language"`
}

// Preview handles POST /api/v1/quotes/preview, the live pricing feedback
// behind the order form.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.Svc.Price(PriceRequest{
		ProductID:      req.ProductID,
		Units:          req.Units,
		ShippingMethod: shipping.Parse(req.ShippingMethod),
		Coupon:         req.Coupon,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": result})
}

// Create handles POST /api/v1/quotes: issue a numbered quote and return its
// document view.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if !h.decode(w, r, &req) {
		return
	}
	q, err := h.Svc.Create(r.Context(), CreateRequest{
		ProductID: req.ProductID,
		Buyer: Buyer{
			Name:           req.Name,
			TaxID:          req.TaxID,
			Email:          req.Email,
			Address:        req.Address,
			Units:          req.Units,
			ShippingMethod: shipping.Parse(req.ShippingMethod),
			Coupon:         req.Coupon,
		},
		Language: req.Language,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{
		"data": map[string]any{
			"id":       q.ID,
			"document": h.Svc.Formatter.Document(q),
		},
	})
}

// Get handles GET /api/v1/quotes/{id}, serving the localized document view.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	q, ok := h.Svc.Quotes.Get(chi.URLParam(r, "id"))
	if !ok {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "quote not found", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Svc.Formatter.Document(q)})
}

// GetPDF handles GET /api/v1/quotes/{id}/pdf. When the exporter is
// unavailable or fails, the response falls back to the document view so the
// buyer still gets their quote.
func (h *Handler) GetPDF(w http.ResponseWriter, r *http.Request) {
	q, ok := h.Svc.Quotes.Get(chi.URLParam(r, "id"))
	if !ok {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "quote not found", nil)
		return
	}
	view := h.Svc.Formatter.Document(q)
	if h.RenderPDF == nil {
		common.JSON(w, http.StatusOK, map[string]any{"data": view})
		return
	}
	pdf, err := h.RenderPDF(view)
	if err != nil {
		h.Logger.Warn().Err(err).Str("quote_id", q.ID).Msg("pdf export failed, serving document view")
		if obs.PDFRenderTotal != nil {
			obs.PDFRenderTotal.WithLabelValues("error").Inc()
		}
		common.JSON(w, http.StatusOK, map[string]any{"data": view})
		return
	}
	if obs.PDFRenderTotal != nil {
		obs.PDFRenderTotal.WithLabelValues("ok").Inc()
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", PDFFileName(q)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// PDFFileName is the download name for an exported quote.
func PDFFileName(q Quote) string {
	name := whitespaceRun.ReplaceAllString(q.Buyer.Name, "_")
	return fmt.Sprintf("Presupuesto_ASP_%s_%s.pdf", q.ID, name)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return false
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(dst); err != nil {
			common.JSONError(w, http.StatusBadRequest, "VALIDATION", "missing or invalid fields", err.Error())
			return false
		}
	}
	return true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrProductNotFound) {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "product not found", nil)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "could not process quote", nil)
}
