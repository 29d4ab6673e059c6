package cart

import (
	"fmt"
	"strings"
	"sync"

	"petal-atelier/internal/domain"
	"petal-atelier/internal/storage"

	"go.uber.org/zap"
)

// Engine is the session cart: items pending checkout. It persists
// itself under its own store key so a reload keeps the selection, but
// it never touches the order ledger.
type Engine interface {
	// Items returns the current cart contents
	Items() []domain.CartItem

	// Add puts a product in the cart, merging into the existing entry
	// (quantity +1) when the product is already there.
	Add(product domain.Product) []domain.CartItem

	// Remove drops the entry with the given product id. Unknown ids
	// are a no-op.
	Remove(id string)

	// Adjust changes an entry's quantity by delta, clamped at a
	// minimum of 1. It never removes the entry.
	Adjust(id string, delta int)

	// Clear empties the cart
	Clear()

	// Total is the sum of price * quantity over all entries
	Total() int64

	// Count is the sum of quantities over all entries
	Count() int

	// Summary renders the cart as the human-readable line recorded on
	// an order, e.g. "Pastel Dreams x2, Morning Sunshine x1".
	Summary(lang domain.Language) string
}

type engine struct {
	store  storage.Store
	logger *zap.Logger
	mu     sync.Mutex
	items  []domain.CartItem
}

// New creates a cart Engine, restoring any persisted contents. An
// unreadable cart blob starts the session empty.
func New(store storage.Store, logger *zap.Logger) Engine {
	e := &engine{store: store, logger: logger}

	if err := store.Load(storage.KeyCart, &e.items); err != nil {
		if err != storage.ErrNotFound {
			logger.Warn("Failed to restore cart, starting empty", zap.Error(err))
		}
		e.items = nil
	}

	return e
}

func (e *engine) Items() []domain.CartItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	items := make([]domain.CartItem, len(e.items))
	copy(items, e.items)
	return items
}

func (e *engine) Add(product domain.Product) []domain.CartItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	merged := false
	for i := range e.items {
		if e.items[i].ID == product.ID {
			e.items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		e.items = append(e.items, domain.CartItem{Product: product, Quantity: 1})
	}

	e.persist()

	items := make([]domain.CartItem, len(e.items))
	copy(items, e.items)
	return items
}

func (e *engine) Remove(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	kept := e.items[:0]
	for _, item := range e.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	e.items = kept

	e.persist()
}

func (e *engine) Adjust(id string, delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.items {
		if e.items[i].ID == id {
			qty := e.items[i].Quantity + delta
			if qty < 1 {
				qty = 1
			}
			e.items[i].Quantity = qty
			break
		}
	}

	e.persist()
}

func (e *engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = nil
	e.persist()
}

func (e *engine) Total() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	var total int64
	for _, item := range e.items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

func (e *engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := 0
	for _, item := range e.items {
		count += item.Quantity
	}
	return count
}

func (e *engine) Summary(lang domain.Language) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	parts := make([]string, 0, len(e.items))
	for _, item := range e.items {
		parts = append(parts, fmt.Sprintf("%s x%d", item.Name.In(lang), item.Quantity))
	}
	return strings.Join(parts, ", ")
}

func (e *engine) persist() {
	if err := e.store.Save(storage.KeyCart, e.items); err != nil {
		e.logger.Warn("Failed to persist cart", zap.Error(err))
	}
}
