package handlers

import (
	"net/http"

	"github.com/unrolled/render"

	"github.com/tokolaju/katalog/app/helpers"
	"github.com/tokolaju/katalog/app/services"
)

type CheckoutHandler struct {
	carts     *services.CartRegistry
	storeName string
	waNumber  string
	render    *render.Render
}

func NewCheckoutHandler(
	carts *services.CartRegistry,
	storeName, waNumber string,
	render *render.Render,
) *CheckoutHandler {
	return &CheckoutHandler{
		carts:     carts,
		storeName: storeName,
		waNumber:  waNumber,
		render:    render,
	}
}

// WhatsAppOrder composes the order summary for the visitor's cart and the
// wa.me link carrying it.
func (h *CheckoutHandler) WhatsAppOrder(w http.ResponseWriter, r *http.Request) {
	cartID, ok := r.Context().Value(helpers.ContextKeyCartID).(string)
	if !ok || cartID == "" {
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "cart session missing"})
		return
	}

	checkout := services.NewCheckoutService(h.carts.For(cartID), h.storeName, h.waNumber)
	message := checkout.ComposeOrderMessage()
	if message == "" {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "cart is empty"})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]string{
		"message": message,
		"link":    checkout.WhatsAppLink(),
	})
}
