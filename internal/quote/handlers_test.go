package quote

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, h *Handler) *chi.Mux {
	t.Helper()
	r := chi.NewRouter()
	r.Post("/api/v1/quotes/preview", h.Preview)
	r.Post("/api/v1/quotes", h.Create)
	r.Get("/api/v1/quotes/{id}", h.Get)
	r.Get("/api/v1/quotes/{id}/pdf", h.GetPDF)
	return r
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return &Handler{
		Svc:      newTestService(t, nil),
		Validate: validator.New(),
		Logger:   zerolog.Nop(),
	}
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPreviewEndpoint(t *testing.T) {
	router := newTestRouter(t, newTestHandler(t))

	rec := postJSON(t, router, "/api/v1/quotes/preview", map[string]any{
		"productId":      "AJ-001",
		"units":          3,
		"shippingMethod": "spain",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			GrandTotal float64 `json:"grandTotal"`
			Tag        string  `json:"tag"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.InDelta(t, 136.30, body.Data.GrandTotal, 1e-9)
	require.Equal(t, "VOLUMEN", body.Data.Tag)
}

func TestPreviewRejectsMissingProduct(t *testing.T) {
	router := newTestRouter(t, newTestHandler(t))

	rec := postJSON(t, router, "/api/v1/quotes/preview", map[string]any{"units": 1})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, router, "/api/v1/quotes/preview", map[string]any{"productId": "ghost"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateEndpointFlow(t *testing.T) {
	h := newTestHandler(t)
	router := newTestRouter(t, h)

	rec := postJSON(t, router, "/api/v1/quotes", map[string]any{
		"productId":      "AJ-001",
		"name":           "María García",
		"taxId":          "12345678Z",
		"email":          "maria@example.com",
		"address":        "Calle Mayor 1, Salamanca",
		"units":          1,
		"shippingMethod": "pickup",
		"language":       "es",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data struct {
			ID       string       `json:"id"`
			Document DocumentView `json:"document"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)
	require.Equal(t, "Presupuesto", created.Data.Document.Title)

	// Issued quote is retrievable by its reference.
	getReq := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/"+created.Data.ID, nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)
	require.Equal(t, http.StatusOK, getRec.Code)
}

func TestCreateValidation(t *testing.T) {
	router := newTestRouter(t, newTestHandler(t))

	rec := postJSON(t, router, "/api/v1/quotes", map[string]any{
		"productId": "AJ-001",
		"name":      "María García",
		"taxId":     "12345678Z",
		"email":     "not-an-email",
		"address":   "somewhere",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUnknownQuote(t *testing.T) {
	router := newTestRouter(t, newTestHandler(t))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/9999-2099", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPDFDownloadAndFallback(t *testing.T) {
	h := newTestHandler(t)
	h.RenderPDF = func(DocumentView) ([]byte, error) { return []byte("%PDF-1.4 test"), nil }
	router := newTestRouter(t, h)

	created := postJSON(t, router, "/api/v1/quotes", map[string]any{
		"productId": "AJ-001",
		"name":      "María García López",
		"taxId":     "12345678Z",
		"email":     "maria@example.com",
		"address":   "Calle Mayor 1",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	var body struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &body))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/quotes/"+body.Data.ID+"/pdf", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "Presupuesto_ASP_"+body.Data.ID+"_María_García_López.pdf")

	// A failing exporter degrades to the JSON document view.
	h.RenderPDF = func(DocumentView) ([]byte, error) { return nil, errors.New("render failed") }
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/quotes/"+body.Data.ID+"/pdf", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestPDFFileName(t *testing.T) {
	q := Quote{ID: "0002-2026", Buyer: Buyer{Name: "Ana  de la Torre"}}
	require.Equal(t, "Presupuesto_ASP_0002-2026_Ana_de_la_Torre.pdf", PDFFileName(q))
}
