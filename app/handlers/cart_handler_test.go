package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokolaju/katalog/app/helpers"
	"github.com/tokolaju/katalog/app/models"
	"github.com/tokolaju/katalog/app/services"
	"github.com/tokolaju/katalog/app/utils/kvstore"
	"github.com/tokolaju/katalog/app/utils/renderer"
)

var testBulkCategories = []string{"kaos-polos", "kaos-sablon"}

type stubProductRepo struct {
	products map[string]models.Product
}

func (s *stubProductRepo) GetAll(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if p, ok := s.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *stubProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	for _, p := range s.products {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, nil
}

func (s *stubProductRepo) GetByCategory(ctx context.Context, code string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if p.CategoryCode == code {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) GetBySection(ctx context.Context, code, section string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if p.CategoryCode == code && p.SectionLabel == section {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) Upsert(ctx context.Context, p *models.Product) error {
	return errors.New("not supported")
}

func newTestHandler(t *testing.T) *CartHandler {
	t.Helper()
	repo := &stubProductRepo{products: map[string]models.Product{
		"p1": {
			ID: "p1", Name: "Kaos Polos Hitam", Slug: "kaos-polos-hitam",
			Price: 35, CategoryCode: "kaos-polos", CategoryName: "Kaos Polos",
			SectionLabel: "Lengan Pendek", WarehouseCode: "KP-HTM-01",
		},
		"p2": {
			ID: "p2", Name: "Mug Keramik", Slug: "mug-keramik",
			Price: 10, CategoryCode: "aksesoris", CategoryName: "Aksesoris",
			SectionLabel: "Mug",
		},
	}}
	registry := services.NewCartRegistry(kvstore.NewMemoryProvider(), testBulkCategories)
	return NewCartHandler(repo, registry, renderer.New())
}

func doRequest(t *testing.T, h http.HandlerFunc, method, target, body string, vars map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = req.WithContext(context.WithValue(req.Context(), helpers.ContextKeyCartID, "test-cart"))
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}

	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartView {
	t.Helper()
	var view cartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

func TestAddItemHandler(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h.AddItem, "POST", "/api/cart", `{"productId":"p1","quantity":2}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	view := decodeCart(t, rec)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "p1", view.Lines[0].ProductID)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	// two bulk units price at the 30 tier
	assert.Equal(t, "60", view.Total.String())
}

func TestAddItemHandlerMergesRepeatAdds(t *testing.T) {
	h := newTestHandler(t)

	doRequest(t, h.AddItem, "POST", "/api/cart", `{"productId":"p1","quantity":2}`, nil)
	rec := doRequest(t, h.AddItem, "POST", "/api/cart", `{"productId":"p1","quantity":3}`, nil)

	view := decodeCart(t, rec)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 5, view.Lines[0].Quantity)
	// five bulk units price at the 25 tier
	assert.Equal(t, "125", view.Total.String())
}

func TestAddItemHandlerValidation(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h.AddItem, "POST", "/api/cart", `{"productId":"p1","quantity":0}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h.AddItem, "POST", "/api/cart", `{"quantity":1}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h.AddItem, "POST", "/api/cart", `not json`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddItemHandlerUnknownProduct(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h.AddItem, "POST", "/api/cart", `{"productId":"ghost","quantity":1}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateQuantityHandlerRemovesAtZero(t *testing.T) {
	h := newTestHandler(t)
	doRequest(t, h.AddItem, "POST", "/api/cart", `{"productId":"p2","quantity":4}`, nil)

	rec := doRequest(t, h.UpdateQuantity, "PUT", "/api/cart/p2", `{"quantity":0}`, map[string]string{"productID": "p2"})
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeCart(t, rec)
	assert.Empty(t, view.Lines)
	assert.True(t, view.Total.IsZero())
}

func TestCartPersistsAcrossRequests(t *testing.T) {
	h := newTestHandler(t)
	doRequest(t, h.AddItem, "POST", "/api/cart", `{"productId":"p2","quantity":1}`, nil)

	rec := doRequest(t, h.GetCart, "GET", "/api/cart", "", nil)
	view := decodeCart(t, rec)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "10", view.Total.String())
}

func TestRemoveAndClearHandlers(t *testing.T) {
	h := newTestHandler(t)
	doRequest(t, h.AddItem, "POST", "/api/cart", `{"productId":"p1","quantity":1}`, nil)
	doRequest(t, h.AddItem, "POST", "/api/cart", `{"productId":"p2","quantity":1}`, nil)

	rec := doRequest(t, h.RemoveItem, "DELETE", "/api/cart/p1", "", map[string]string{"productID": "p1"})
	view := decodeCart(t, rec)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "p2", view.Lines[0].ProductID)

	rec = doRequest(t, h.ClearCart, "DELETE", "/api/cart", "", nil)
	view = decodeCart(t, rec)
	assert.Empty(t, view.Lines)
}

func TestConcurrentAddsLandInOneCart(t *testing.T) {
	h := newTestHandler(t)

	var wg sync.WaitGroup
	for _, id := range []string{"p1", "p2"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			doRequest(t, h.AddItem, "POST", "/api/cart", fmt.Sprintf(`{"productId":%q,"quantity":1}`, id), nil)
		}(id)
	}
	wg.Wait()

	rec := doRequest(t, h.GetCart, "GET", "/api/cart", "", nil)
	view := decodeCart(t, rec)
	assert.Len(t, view.Lines, 2, "neither concurrent add may overwrite the other")
}

func TestCartHandlerMissingSession(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest("GET", "/api/cart", nil)
	rec := httptest.NewRecorder()
	h.GetCart(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
