package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	svc, err := NewService(DefaultProducts())
	require.NoError(t, err)
	h := &Handler{Service: svc}
	r := chi.NewRouter()
	r.Get("/api/v1/products", h.List)
	r.Get("/api/v1/products/{id}", h.Detail)
	return r
}

func TestListProducts(t *testing.T) {
	router := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products?lang=pt", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []View `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data)
	require.Equal(t, "AJ-001", body.Data[0].ID)
	require.NotEmpty(t, body.Data[0].Maintenance)
}

func TestProductDetail(t *testing.T) {
	router := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/AJ-001", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data View `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 45.00, body.Data.BasePrice)
}

func TestProductDetailNotFound(t *testing.T) {
	router := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/ghost", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListDefaultsToSpanish(t *testing.T) {
	router := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products?lang=xx", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []View `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	want := DefaultProducts()[0]
	require.Equal(t, want.Name["es"], body.Data[0].Name)
}
