package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"

	"github.com/tokolaju/katalog/app/helpers"
	"github.com/tokolaju/katalog/app/models"
	"github.com/tokolaju/katalog/app/repositories"
	"github.com/tokolaju/katalog/app/services"
)

type CartHandler struct {
	productRepo repositories.ProductRepositoryImpl
	carts       *services.CartRegistry
	render      *render.Render
}

func NewCartHandler(
	productRepo repositories.ProductRepositoryImpl,
	carts *services.CartRegistry,
	render *render.Render,
) *CartHandler {
	return &CartHandler{
		productRepo: productRepo,
		carts:       carts,
		render:      render,
	}
}

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartLineView struct {
	models.CartLine
	EffectiveUnitPrice decimal.Decimal `json:"effectiveUnitPrice"`
	LineTotal          decimal.Decimal `json:"lineTotal"`
}

type cartView struct {
	Lines []cartLineView  `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// cartFor resolves the visitor's shared cart engine. The cart ID has been
// placed on the context by the session middleware; the registry guarantees
// concurrent requests for the same cart hit the same instance.
func (h *CartHandler) cartFor(r *http.Request) (*services.CartService, bool) {
	cartID, ok := r.Context().Value(helpers.ContextKeyCartID).(string)
	if !ok || cartID == "" {
		return nil, false
	}
	return h.carts.For(cartID), true
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cartFor(r)
	if !ok {
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "cart session missing"})
		return
	}
	h.render.JSON(w, http.StatusOK, buildCartView(cart))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cartFor(r)
	if !ok {
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "cart session missing"})
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := helpers.Validate.Struct(req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), req.ProductID)
	if err != nil {
		log.Printf("CartHandler.AddItem: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load product"})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	cart.AddItem(models.CartLineFromProduct(product, req.Quantity))
	h.render.JSON(w, http.StatusOK, buildCartView(cart))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cartFor(r)
	if !ok {
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "cart session missing"})
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	cart.UpdateQuantity(mux.Vars(r)["productID"], req.Quantity)
	h.render.JSON(w, http.StatusOK, buildCartView(cart))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cartFor(r)
	if !ok {
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "cart session missing"})
		return
	}

	cart.RemoveItem(mux.Vars(r)["productID"])
	h.render.JSON(w, http.StatusOK, buildCartView(cart))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cartFor(r)
	if !ok {
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "cart session missing"})
		return
	}

	cart.Clear()
	h.render.JSON(w, http.StatusOK, buildCartView(cart))
}

func buildCartView(cart *services.CartService) cartView {
	lines := cart.Lines()
	views := make([]cartLineView, 0, len(lines))
	for _, line := range lines {
		price := cart.EffectiveUnitPrice(line)
		views = append(views, cartLineView{
			CartLine:           line,
			EffectiveUnitPrice: price,
			LineTotal:          price.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}
	return cartView{Lines: views, Total: cart.Total()}
}
