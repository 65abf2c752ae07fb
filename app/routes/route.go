package routes

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tokolaju/katalog/app/configs"
	"github.com/tokolaju/katalog/app/handlers"
	"github.com/tokolaju/katalog/app/middlewares"
	"github.com/tokolaju/katalog/app/repositories"
	"github.com/tokolaju/katalog/app/services"
	"github.com/tokolaju/katalog/app/utils/kvstore"
	"github.com/tokolaju/katalog/app/utils/renderer"
)

func NewRouter(db *mongo.Database, carts kvstore.Provider, env configs.ENV) *mux.Router {
	router := mux.NewRouter()

	render := renderer.New()
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)

	registry := services.NewCartRegistry(carts, env.BulkCategories)

	catalogHandler := handlers.NewCatalogHandler(categoryRepo, productRepo, render, env.StoreName)
	cartHandler := handlers.NewCartHandler(productRepo, registry, render)
	checkoutHandler := handlers.NewCheckoutHandler(registry, env.StoreName, env.StoreWhatsApp, render)

	router.Use(csrf.Protect([]byte(env.SESSION_KEY), csrf.Secure(false), csrf.Path("/")))
	router.Use(csrfTokenHeader)
	router.Use(middlewares.CartSession)

	router.HandleFunc("/", catalogHandler.Home).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/categories", catalogHandler.Categories).Methods("GET")
	api.HandleFunc("/categories/{slug}/products", catalogHandler.ProductsByCategory).Methods("GET")
	api.HandleFunc("/products/{slug}", catalogHandler.ProductDetail).Methods("GET")

	api.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	api.HandleFunc("/cart", cartHandler.AddItem).Methods("POST")
	api.HandleFunc("/cart/{productID}", cartHandler.UpdateQuantity).Methods("PUT")
	api.HandleFunc("/cart/{productID}", cartHandler.RemoveItem).Methods("DELETE")
	api.HandleFunc("/cart", cartHandler.ClearCart).Methods("DELETE")

	api.HandleFunc("/checkout/whatsapp", checkoutHandler.WhatsAppOrder).Methods("GET")

	return router
}

// csrfTokenHeader exposes the token on every response so API clients can
// echo it back in X-CSRF-Token on mutating requests.
func csrfTokenHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CSRF-Token", csrf.Token(r))
		next.ServeHTTP(w, r)
	})
}
