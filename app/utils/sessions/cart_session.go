package sessions

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/tokolaju/katalog/app/configs"
)

const (
	SessionCartKey   = "cart_session"
	CartSessionIDKey = "cart_id"
)

var store = newCookieStore()

// newCookieStore prefers the dedicated auth/enc key pair minted by the
// generate-keys command; SESSION_KEY is the legacy signing-only fallback.
func newCookieStore() *sessions.CookieStore {
	var s *sessions.CookieStore

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Printf("sessions: APP_AUTH_KEY/APP_ENC_KEY not usable, falling back to SESSION_KEY: %v", err)
		s = sessions.NewCookieStore([]byte(configs.LoadENV.SESSION_KEY))
	} else {
		s = sessions.NewCookieStore(keys.AuthKey, keys.EncKey)
	}

	s.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false,
	}
	return s
}

// GetCartID returns the visitor's cart ID, minting and saving a new one on
// first visit. The ID names the visitor's bucket in the cart database.
func GetCartID(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := store.Get(r, SessionCartKey)
	if err != nil {
		return "", err
	}

	if cartID, ok := session.Values[CartSessionIDKey].(string); ok && cartID != "" {
		return cartID, nil
	}

	newCartID := uuid.New().String()
	session.Values[CartSessionIDKey] = newCartID
	err = session.Save(r, w)
	if err != nil {
		return "", err
	}

	return newCartID, nil
}
