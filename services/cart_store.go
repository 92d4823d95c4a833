package services

import (
	"fmt"
	"sync"

	"petal-pink/models"
)

type ProductResolver interface {
	Resolve(id int) (models.Product, error)
}

type CartEventKind string

const (
	CartItemAdded   CartEventKind = "item_added"
	CartItemUpdated CartEventKind = "item_updated"
	CartItemRemoved CartEventKind = "item_removed"
	CartCleared     CartEventKind = "cleared"
)

// CartEvent is published after a mutation has been applied. Entries is the
// cart content at that point.
type CartEvent struct {
	Kind      CartEventKind
	ProductID int
	Entries   []models.CartEntry
}

type subscriber struct {
	id int
	fn func(CartEvent)
}

// CartStore is the only mutation surface of a cart. Entries keep insertion
// order; a quantity update never reorders, an add of a new product appends.
// Every stored quantity is at least 1.
//
// Mutations are serialized together with their notifications, so subscribers
// see events in the order they were applied. Subscribers must not mutate the
// store they are subscribed to.
type CartStore struct {
	catalog ProductResolver

	writeMu sync.Mutex
	mu      sync.Mutex
	order   []int
	entries map[int]int

	subMu  sync.Mutex
	subs   []subscriber
	nextID int
}

func NewCartStore(catalog ProductResolver) *CartStore {
	return &CartStore{
		catalog: catalog,
		entries: make(map[int]int),
	}
}

// AddToCart increases the quantity of productID by quantity, appending a new
// entry if the product is not in the cart yet. It returns the new quantity.
// An add that would take the entry past models.MaxLineQuantity is rejected
// and leaves the cart unchanged.
func (s *CartStore) AddToCart(productID, quantity int) (int, error) {
	if quantity < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if _, err := s.catalog.Resolve(productID); err != nil {
		return 0, fmt.Errorf("%w: %d", ErrUnknownProduct, productID)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	current, ok := s.entries[productID]
	if quantity > models.MaxLineQuantity-current {
		s.mu.Unlock()
		return 0, fmt.Errorf("%w: %d in cart, adding %d, limit %d",
			ErrQuantityLimit, current, quantity, models.MaxLineQuantity)
	}
	if !ok {
		s.order = append(s.order, productID)
	}
	s.entries[productID] = current + quantity
	newQty := s.entries[productID]
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(CartEvent{Kind: CartItemAdded, ProductID: productID, Entries: snapshot})
	return newQty, nil
}

// RemoveFromCart reports whether an entry was removed.
func (s *CartStore) RemoveFromCart(productID int) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.remove(productID)
}

func (s *CartStore) remove(productID int) bool {
	s.mu.Lock()
	if !s.removeLocked(productID) {
		s.mu.Unlock()
		return false
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(CartEvent{Kind: CartItemRemoved, ProductID: productID, Entries: snapshot})
	return true
}

// UpdateQuantity replaces the quantity in place. A quantity <= 0 removes the
// entry; one above models.MaxLineQuantity is stored as the limit. Updating a
// product that is not in the cart does nothing and reports false; it never
// creates an entry.
func (s *CartStore) UpdateQuantity(productID, newQuantity int) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if newQuantity <= 0 {
		return s.remove(productID)
	}
	newQuantity = min(newQuantity, models.MaxLineQuantity)

	s.mu.Lock()
	current, ok := s.entries[productID]
	if !ok {
		s.mu.Unlock()
		return false
	}
	if current == newQuantity {
		s.mu.Unlock()
		return true
	}
	s.entries[productID] = newQuantity
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(CartEvent{Kind: CartItemUpdated, ProductID: productID, Entries: snapshot})
	return true
}

func (s *CartStore) Clear() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	wasEmpty := len(s.order) == 0
	s.order = nil
	s.entries = make(map[int]int)
	s.mu.Unlock()

	if !wasEmpty {
		s.publish(CartEvent{Kind: CartCleared, Entries: []models.CartEntry{}})
	}
}

// Drain empties the cart and returns what it held, priced at current catalog
// prices. No other mutation can land between the read and the clear.
func (s *CartStore) Drain() models.CartView {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	entries := s.snapshotLocked()
	s.order = nil
	s.entries = make(map[int]int)
	s.mu.Unlock()

	if len(entries) > 0 {
		s.publish(CartEvent{Kind: CartCleared, Entries: []models.CartEntry{}})
	}
	return s.viewOf(entries)
}

// Restore replaces the cart content with a persisted snapshot without
// publishing. Entries for products the catalog no longer has, entries with a
// quantity below 1 and repeated product ids are dropped; quantities above
// models.MaxLineQuantity are capped.
func (s *CartStore) Restore(entries []models.CartEntry) {
	order := make([]int, 0, len(entries))
	m := make(map[int]int, len(entries))
	for _, e := range entries {
		if e.Quantity < 1 {
			continue
		}
		if _, dup := m[e.ProductID]; dup {
			continue
		}
		if _, err := s.catalog.Resolve(e.ProductID); err != nil {
			continue
		}
		order = append(order, e.ProductID)
		m[e.ProductID] = min(e.Quantity, models.MaxLineQuantity)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	s.order = order
	s.entries = m
	s.mu.Unlock()
}

func (s *CartStore) Quantity(productID int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.entries[productID]
	return q, ok
}

func (s *CartStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

func (s *CartStore) Entries() []models.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, q := range s.entries {
		total += q
	}
	return total
}

// Subtotal prices every entry at the catalog's current unit price.
func (s *CartStore) Subtotal() int64 {
	var total int64
	for _, line := range s.Lines() {
		total += line.LineTotal
	}
	return total
}

// Lines joins entries with current catalog data. Entries whose product no
// longer resolves are skipped.
func (s *CartStore) Lines() []models.CartLine {
	return s.linesOf(s.Entries())
}

func (s *CartStore) linesOf(entries []models.CartEntry) []models.CartLine {
	lines := make([]models.CartLine, 0, len(entries))
	for _, e := range entries {
		p, err := s.catalog.Resolve(e.ProductID)
		if err != nil {
			continue
		}
		unit := p.UnitPrice()
		lines = append(lines, models.CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			ImageURL:  p.ImageURL,
			Price:     p.Price,
			Discount:  p.Discount,
			UnitPrice: unit,
			Quantity:  e.Quantity,
			LineTotal: unit * int64(e.Quantity),
		})
	}
	return lines
}

func (s *CartStore) View() models.CartView {
	return s.viewOf(s.Entries())
}

func (s *CartStore) viewOf(entries []models.CartEntry) models.CartView {
	lines := s.linesOf(entries)
	view := models.CartView{Items: lines}
	for _, l := range lines {
		view.ItemCount += l.Quantity
		view.Subtotal += l.LineTotal
	}
	return view
}

// Subscribe registers fn to be called after every mutation that changed the
// cart. Calls happen on the mutating goroutine, in subscription order.
func (s *CartStore) Subscribe(fn func(CartEvent)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *CartStore) publish(ev CartEvent) {
	s.subMu.Lock()
	subs := append([]subscriber(nil), s.subs...)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn(ev)
	}
}

func (s *CartStore) removeLocked(productID int) bool {
	if _, ok := s.entries[productID]; !ok {
		return false
	}
	delete(s.entries, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *CartStore) snapshotLocked() []models.CartEntry {
	out := make([]models.CartEntry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, models.CartEntry{ProductID: id, Quantity: s.entries[id]})
	}
	return out
}
