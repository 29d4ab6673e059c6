package catalog

import (
	"sync"

	"petal-atelier/internal/domain"
	"petal-atelier/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service owns the product collection's CRUD lifecycle
type Service interface {
	// List returns the catalog, most recently created first. An empty
	// or unreadable store yields the default seed catalog.
	List() []domain.Product

	// Upsert persists a product. With isNew it assigns a fresh id and
	// prepends; otherwise it replaces the entry with the same id in
	// place. Returns the stored product.
	Upsert(product domain.Product, isNew bool) domain.Product

	// Delete removes the product with the given id. Unknown ids are a
	// no-op.
	Delete(id string)

	// FindByID returns the product with the given id, if present
	FindByID(id string) (domain.Product, bool)
}

type service struct {
	store  storage.Store
	logger *zap.Logger
	mu     sync.Mutex
}

// New creates a catalog Service backed by the given store
func New(store storage.Store, logger *zap.Logger) Service {
	return &service{store: store, logger: logger}
}

func (s *service) List() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *service) Upsert(product domain.Product, isNew bool) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.load()

	if isNew {
		product.ID = uuid.NewString()
		products = append([]domain.Product{product}, products...)
	} else {
		for i := range products {
			if products[i].ID == product.ID {
				products[i] = product
				break
			}
		}
	}

	s.persist(products)
	return product
}

func (s *service) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.load()
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	s.persist(kept)
}

func (s *service) FindByID(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.load() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// load reads the persisted catalog, falling back to the seed when
// nothing is stored or the blob cannot be decoded.
func (s *service) load() []domain.Product {
	var products []domain.Product
	if err := s.store.Load(storage.KeyProducts, &products); err != nil {
		if err != storage.ErrNotFound {
			s.logger.Warn("Failed to load product catalog, serving defaults", zap.Error(err))
		}
		return DefaultCatalog()
	}
	return products
}

func (s *service) persist(products []domain.Product) {
	if err := s.store.Save(storage.KeyProducts, products); err != nil {
		s.logger.Warn("Failed to persist product catalog", zap.Error(err))
	}
}
