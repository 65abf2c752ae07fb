package services

import (
	"log"
	"sync"

	"github.com/tokolaju/katalog/app/utils/kvstore"
)

// CartRegistry hands out one CartService per cart ID. Sharing the instance
// is what makes the engine's mutex effective across requests: two handlers
// hitting the same cart serialize on the same lock instead of racing
// separate load-mutate-persist cycles over the same bucket.
type CartRegistry struct {
	mu             sync.Mutex
	stores         kvstore.Provider
	bulkCategories []string
	carts          map[string]*CartService
}

func NewCartRegistry(stores kvstore.Provider, bulkCategories []string) *CartRegistry {
	return &CartRegistry{
		stores:         stores,
		bulkCategories: bulkCategories,
		carts:          make(map[string]*CartService),
	}
}

// For returns the engine owning cartID, restoring it from its bucket on
// first use.
func (r *CartRegistry) For(cartID string) *CartService {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart, ok := r.carts[cartID]; ok {
		return cart
	}

	cart := NewCartService(r.stores.Bucket(cartID), r.bulkCategories)
	cart.Subscribe(func() {
		log.Printf("cart %s updated: %d lines", cartID, len(cart.Lines()))
	})
	cart.Load()
	r.carts[cartID] = cart
	return cart
}
