package webserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lauremed/catalog/config"
	"github.com/lauremed/catalog/internal/domain"
	"github.com/lauremed/catalog/internal/storage"
)

func newTestServer() (*WebServer, *storage.MemoryStorage) {
	store := storage.NewMemoryStorage()
	return NewWebServer(config.DefaultAppConfig, store), store
}

func doRequest(s *WebServer, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestListProducts(t *testing.T) {
	s, _ := newTestServer()

	rec := doRequest(s, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 6)
	assert.Equal(t, "Organic Immunity Plus", products[0].Name)
	assert.Equal(t, "299.00", products[0].Price)
}

func TestGetProduct(t *testing.T) {
	s, store := newTestServer()

	products, err := store.GetProducts(context.Background())
	require.NoError(t, err)

	rec := doRequest(s, http.MethodGet, "/api/products/"+products[1].ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var product domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	assert.Equal(t, products[1].ID, product.ID)
	assert.Equal(t, "Organic Pain Relief Gel", product.Name)

	rec = doRequest(s, http.MethodGet, "/api/products/no-such-id", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String())
}

func TestProductsByCategoryAndSpecialty(t *testing.T) {
	s, _ := newTestServer()

	rec := doRequest(s, http.MethodGet, "/api/products/category/Natural%20Pain%20Relief", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var products []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Organic Pain Relief Gel", products[0].Name)

	rec = doRequest(s, http.MethodGet, "/api/products/specialty/Nutrition%20Care", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 2)

	// Unknown labels yield an empty list, not an error.
	rec = doRequest(s, http.MethodGet, "/api/products/category/Unknown", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Empty(t, products)
}

func TestSearch(t *testing.T) {
	s, _ := newTestServer()

	rec := doRequest(s, http.MethodGet, "/api/search?q=gel", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var products []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Organic Pain Relief Gel", products[0].Name)

	rec = doRequest(s, http.MethodGet, "/api/search", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Search query is required"}`, rec.Body.String())

	rec = doRequest(s, http.MethodGet, "/api/search?q=", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCategoriesAndSpecialties(t *testing.T) {
	s, store := newTestServer()

	rec := doRequest(s, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var categories []domain.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.Len(t, categories, 8)

	rec = doRequest(s, http.MethodGet, "/api/categories/"+categories[0].ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(s, http.MethodGet, "/api/categories/no-such-id", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Category not found"}`, rec.Body.String())

	specialties, err := store.GetSpecialties(context.Background())
	require.NoError(t, err)

	rec = doRequest(s, http.MethodGet, "/api/specialties", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Specialty
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, len(specialties))

	rec = doRequest(s, http.MethodGet, "/api/specialties/no-such-id", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Specialty not found"}`, rec.Body.String())
}

func TestCartLifecycle(t *testing.T) {
	s, _ := newTestServer()

	rec := doRequest(s, http.MethodPost, "/api/cart",
		`{"productId":"product-1","userId":"user-1","quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var created domain.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 2, *created.Quantity)

	rec = doRequest(s, http.MethodGet, "/api/cart/user-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []domain.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "product-1", *items[0].ProductID)

	rec = doRequest(s, http.MethodPut, "/api/cart/"+created.ID, `{"quantity":5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated domain.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 5, *updated.Quantity)

	rec = doRequest(s, http.MethodPut, "/api/cart/no-such-id", `{"quantity":5}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Cart item not found"}`, rec.Body.String())

	rec = doRequest(s, http.MethodDelete, "/api/cart/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = doRequest(s, http.MethodDelete, "/api/cart/"+created.ID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartValidation(t *testing.T) {
	s, _ := newTestServer()

	// Quantity below one is rejected before it reaches the store.
	rec := doRequest(s, http.MethodPost, "/api/cart", `{"userId":"user-1","quantity":0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(s, http.MethodPut, "/api/cart/some-id", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Malformed JSON is a client error, not a crash.
	rec = doRequest(s, http.MethodPost, "/api/cart", `{"userId":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnmatchedRoutes(t *testing.T) {
	s, _ := newTestServer()

	rec := doRequest(s, http.MethodGet, "/api/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())

	// Wrong method on a known path collapses to the same 404.
	rec = doRequest(s, http.MethodDelete, "/api/products", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer()

	rec := doRequest(s, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
