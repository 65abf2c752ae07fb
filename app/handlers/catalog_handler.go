package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"

	"github.com/tokolaju/katalog/app/models"
	"github.com/tokolaju/katalog/app/repositories"
)

type CatalogHandler struct {
	categoryRepo repositories.CategoryRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	render       *render.Render
	storeName    string
}

func NewCatalogHandler(
	categoryRepo repositories.CategoryRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	render *render.Render,
	storeName string,
) *CatalogHandler {
	return &CatalogHandler{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		render:       render,
		storeName:    storeName,
	}
}

func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, map[string]string{
		"store":  h.storeName,
		"status": "ok",
	})
}

func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("CatalogHandler.Categories: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load categories"})
		return
	}
	h.render.JSON(w, http.StatusOK, categories)
}

// ProductsByCategory lists a category's products, optionally narrowed to
// one section via the ?section= query parameter.
func (h *CatalogHandler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := mux.Vars(r)["slug"]

	category, err := h.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		log.Printf("CatalogHandler.ProductsByCategory: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load category"})
		return
	}
	if category == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "category not found"})
		return
	}

	var products []models.Product
	if section := r.URL.Query().Get("section"); section != "" {
		products, err = h.productRepo.GetBySection(ctx, category.Code, section)
	} else {
		products, err = h.productRepo.GetByCategory(ctx, category.Code)
	}
	if err != nil {
		log.Printf("CatalogHandler.ProductsByCategory: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load products"})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"products": products,
	})
}

func (h *CatalogHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := h.productRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("CatalogHandler.ProductDetail: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load product"})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	h.render.JSON(w, http.StatusOK, product)
}
