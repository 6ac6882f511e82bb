package dialog

import "sync"

// CartEntry is one product line in a cart.
type CartEntry struct {
	Product  string
	Quantity int
}

type cart struct {
	index   map[string]int // product -> position in entries
	entries []CartEntry
}

// CartStore keeps a per-user shopping cart that preserves insertion order,
// so the checkout summary lists products in the order they were first
// added.
type CartStore struct {
	mu    sync.Mutex
	carts map[UserID]*cart
}

// NewCartStore constructs an empty in-memory store.
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[UserID]*cart)}
}

// Add increments the quantity of a product and returns the new value.
// Absent products start at zero, so the result is always >= 1.
func (s *CartStore) Add(user UserID, product string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[user]
	if !ok {
		c = &cart{index: make(map[string]int)}
		s.carts[user] = c
	}
	if pos, ok := c.index[product]; ok {
		c.entries[pos].Quantity++
		return c.entries[pos].Quantity
	}
	c.index[product] = len(c.entries)
	c.entries = append(c.entries, CartEntry{Product: product, Quantity: 1})
	return 1
}

// Entries returns the cart lines in insertion order. The slice is a copy.
func (s *CartStore) Entries(user UserID) []CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[user]
	if !ok || len(c.entries) == 0 {
		return nil
	}
	out := make([]CartEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Empty reports whether the user's cart has no lines.
func (s *CartStore) Empty(user UserID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[user]
	return !ok || len(c.entries) == 0
}

// Clear resets the user's cart to empty.
func (s *CartStore) Clear(user UserID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, user)
}
