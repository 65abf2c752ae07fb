package services

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tokolaju/katalog/app/models"
	"github.com/tokolaju/katalog/app/utils/calc"
	"github.com/tokolaju/katalog/app/utils/kvstore"
)

// CartStorageKey is the fixed key the serialized line list lives under in
// the engine's store. The store itself is already scoped to one visitor.
const CartStorageKey = "cart_lines_v1"

// CartObserver is invoked after every mutating cart operation, once the
// persistence attempt has completed. Observers must not mutate the cart
// synchronously from inside the callback.
type CartObserver func()

type subscription struct {
	id int
	fn CartObserver
}

// CartService owns one visitor's cart: an insertion-ordered set of lines,
// mirrored to durable storage after every mutation. Persistence failures
// are logged and swallowed; the cart keeps working in memory and the next
// mutation retries the write.
type CartService struct {
	mu    sync.Mutex
	store kvstore.Store
	lines map[string]*models.CartLine
	order []string
	bulk  map[string]bool

	nextSubID int
	subs      []subscription
}

func NewCartService(store kvstore.Store, bulkCategories []string) *CartService {
	bulk := make(map[string]bool, len(bulkCategories))
	for _, code := range bulkCategories {
		bulk[code] = true
	}
	return &CartService{
		store: store,
		lines: make(map[string]*models.CartLine),
		bulk:  bulk,
	}
}

// Load replaces the in-memory state with whatever is persisted. An empty,
// absent or malformed payload yields an empty cart; it never fails the
// caller.
func (s *CartService) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = make(map[string]*models.CartLine)
	s.order = nil

	data, err := s.store.Get(CartStorageKey)
	if err != nil {
		log.Printf("CartService.Load: failed to read persisted cart: %v", err)
		return
	}
	if len(data) == 0 {
		return
	}

	var stored []models.CartLine
	if err := json.Unmarshal(data, &stored); err != nil {
		log.Printf("CartService.Load: malformed persisted cart, starting empty: %v", err)
		return
	}

	for _, line := range stored {
		if line.ProductID == "" || line.Quantity < 1 {
			continue
		}
		if existing, ok := s.lines[line.ProductID]; ok {
			existing.Quantity += line.Quantity
			continue
		}
		copied := line
		s.lines[line.ProductID] = &copied
		s.order = append(s.order, line.ProductID)
	}
}

// AddItem inserts the line, or increments the quantity of the existing line
// with the same product ID.
func (s *CartService) AddItem(line models.CartLine) {
	if line.ProductID == "" || line.Quantity < 1 {
		return
	}

	s.mu.Lock()
	if existing, ok := s.lines[line.ProductID]; ok {
		existing.Quantity += line.Quantity
	} else {
		copied := line
		s.lines[line.ProductID] = &copied
		s.order = append(s.order, line.ProductID)
	}
	s.persistLocked()
	subs := s.snapshotSubsLocked()
	s.mu.Unlock()

	notify(subs)
}

// UpdateQuantity sets the line's quantity; zero or negative removes the
// line. Unknown product IDs leave the cart unchanged.
func (s *CartService) UpdateQuantity(productID string, newQuantity int) {
	s.mu.Lock()
	if line, ok := s.lines[productID]; ok {
		if newQuantity <= 0 {
			s.removeLocked(productID)
		} else {
			line.Quantity = newQuantity
		}
	}
	s.persistLocked()
	subs := s.snapshotSubsLocked()
	s.mu.Unlock()

	notify(subs)
}

// RemoveItem deletes the line if present. Removing an absent product is a
// no-op that still persists and notifies.
func (s *CartService) RemoveItem(productID string) {
	s.mu.Lock()
	s.removeLocked(productID)
	s.persistLocked()
	subs := s.snapshotSubsLocked()
	s.mu.Unlock()

	notify(subs)
}

// Clear empties the cart.
func (s *CartService) Clear() {
	s.mu.Lock()
	s.lines = make(map[string]*models.CartLine)
	s.order = nil
	s.persistLocked()
	subs := s.snapshotSubsLocked()
	s.mu.Unlock()

	notify(subs)
}

func (s *CartService) IsInCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.lines[productID]
	return ok
}

func (s *CartService) QuantityOf(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if line, ok := s.lines[productID]; ok {
		return line.Quantity
	}
	return 0
}

// Lines returns the cart contents in insertion order.
func (s *CartService) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLinesLocked()
}

// EffectiveUnitPrice is the price actually charged per unit. Lines in a
// bulk category share the tier selected by the combined quantity of every
// bulk line in the cart; all other lines keep their base price. The value
// is recomputed on every call because any bulk mutation shifts the tier
// for all bulk lines at once.
func (s *CartService) EffectiveUnitPrice(line models.CartLine) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effectiveUnitPriceLocked(line)
}

// Total sums effective unit price times quantity over all lines.
func (s *CartService) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, id := range s.order {
		line := s.lines[id]
		price := s.effectiveUnitPriceLocked(*line)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Subscribe registers an observer and returns a token for Unsubscribe.
// Observers run synchronously in registration order.
func (s *CartService) Subscribe(fn CartObserver) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	s.subs = append(s.subs, subscription{id: s.nextSubID, fn: fn})
	return s.nextSubID
}

func (s *CartService) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

func (s *CartService) effectiveUnitPriceLocked(line models.CartLine) decimal.Decimal {
	if !s.bulk[line.CategoryCode] {
		return line.UnitPrice
	}
	return calc.TierUnitPrice(s.combinedBulkQuantityLocked())
}

func (s *CartService) combinedBulkQuantityLocked() int {
	total := 0
	for _, line := range s.lines {
		if s.bulk[line.CategoryCode] {
			total += line.Quantity
		}
	}
	return total
}

func (s *CartService) removeLocked(productID string) {
	if _, ok := s.lines[productID]; !ok {
		return
	}
	delete(s.lines, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *CartService) persistLocked() {
	data, err := json.Marshal(s.snapshotLinesLocked())
	if err != nil {
		log.Printf("CartService: failed to serialize cart: %v", err)
		return
	}
	if err := s.store.Set(CartStorageKey, data); err != nil {
		log.Printf("CartService: failed to persist cart: %v", err)
	}
}

func (s *CartService) snapshotLinesLocked() []models.CartLine {
	lines := make([]models.CartLine, 0, len(s.order))
	for _, id := range s.order {
		lines = append(lines, *s.lines[id])
	}
	return lines
}

func (s *CartService) snapshotSubsLocked() []subscription {
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	return subs
}

// notify runs outside the mutex so observers can read cart state.
func notify(subs []subscription) {
	for _, sub := range subs {
		sub.fn()
	}
}
