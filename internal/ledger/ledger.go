package ledger

import (
	"errors"
	"sync"
	"time"

	"petal-atelier/internal/domain"
	"petal-atelier/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrIllegalTransition = errors.New("illegal order status transition")
)

// Service owns order creation and the status lifecycle
type Service interface {
	// List returns all orders, most recent first
	List() []domain.Order

	// Create records a new order from the draft. The id, creation time
	// and PENDING status are always assigned here; whatever the draft
	// carries for them is ignored. Missing optional fields default to
	// empty, the product summary to "Custom".
	Create(draft domain.Order) domain.Order

	// SetStatus moves the order to a new status. Transitions must
	// follow the order lifecycle (PENDING→PROCESSING→COMPLETED, any
	// active state→CANCELLED); anything else returns
	// ErrIllegalTransition. An unknown id is a no-op.
	SetStatus(id string, status domain.OrderStatus) error

	// Delete permanently removes the order. Unknown ids are a no-op.
	Delete(id string)

	// Revenue returns the summed total_price of COMPLETED orders
	Revenue() int64
}

type service struct {
	store  storage.Store
	logger *zap.Logger
	mu     sync.Mutex
}

// New creates an order ledger backed by the given store
func New(store storage.Store, logger *zap.Logger) Service {
	return &service{store: store, logger: logger}
}

func (s *service) List() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *service) Create(draft domain.Order) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := draft
	order.ID = uuid.NewString()
	order.Status = domain.StatusPending
	order.CreatedAt = time.Now()

	if order.ProductName == "" {
		order.ProductName = "Custom"
	}
	if order.ProductID == "" {
		order.ProductID = "custom"
	}
	if order.Quantity < 1 {
		order.Quantity = 1
	}

	orders := append([]domain.Order{order}, s.load()...)
	s.persist(orders)

	s.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.Int("quantity", order.Quantity),
		zap.Int64("total_price", order.TotalPrice),
	)

	return order
}

func (s *service) SetStatus(id string, status domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.load()
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if !domain.CanTransition(orders[i].Status, status) {
			return ErrIllegalTransition
		}
		orders[i].Status = status
		s.persist(orders)

		s.logger.Info("Order status changed",
			zap.String("order_id", id),
			zap.String("status", string(status)),
		)
		return nil
	}

	// Unknown id is not an error, matching delete semantics
	return nil
}

func (s *service) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.load()
	kept := orders[:0]
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}

	s.persist(kept)
}

func (s *service) Revenue() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, o := range s.load() {
		if o.Status == domain.StatusCompleted {
			total += o.TotalPrice
		}
	}
	return total
}

func (s *service) load() []domain.Order {
	var orders []domain.Order
	if err := s.store.Load(storage.KeyOrders, &orders); err != nil {
		if err != storage.ErrNotFound {
			s.logger.Warn("Failed to load order ledger, starting empty", zap.Error(err))
		}
		return nil
	}
	return orders
}

func (s *service) persist(orders []domain.Order) {
	if err := s.store.Save(storage.KeyOrders, orders); err != nil {
		s.logger.Warn("Failed to persist order ledger", zap.Error(err))
	}
}
