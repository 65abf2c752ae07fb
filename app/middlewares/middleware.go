package middlewares

import (
	"context"
	"log"
	"net/http"

	"github.com/tokolaju/katalog/app/helpers"
	"github.com/tokolaju/katalog/app/utils/sessions"
)

// CartSession resolves the visitor's cart ID from the session cookie and
// puts it on the request context. Cart handlers refuse to run without it.
func CartSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cartID, err := sessions.GetCartID(w, r)
		if err != nil {
			log.Printf("CartSession: failed to resolve cart session: %v", err)
			http.Error(w, "failed to resolve cart session", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeyCartID, cartID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
