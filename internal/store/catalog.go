package store

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/lenteradev69/barbershits/internal/domain"
	"github.com/lenteradev69/barbershits/internal/storage"
)

// Catalog holds the services and retail products the shop sells. The
// collections live in memory and every mutation is written through to
// the backend whole.
type Catalog struct {
	mu       sync.RWMutex
	backend  storage.Backend
	log      *zap.SugaredLogger
	services []domain.Service
	products []domain.Product
}

func NewCatalog(backend storage.Backend, log *zap.SugaredLogger) (*Catalog, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	services, found, err := loadCollection[domain.Service](backend, storage.KeyServices, log)
	if err != nil {
		return nil, err
	}
	if !found {
		services = DefaultServices()
		if err := saveCollection(backend, storage.KeyServices, services); err != nil {
			return nil, err
		}
	}

	products, found, err := loadCollection[domain.Product](backend, storage.KeyProducts, log)
	if err != nil {
		return nil, err
	}
	if !found {
		products = DefaultProducts()
		if err := saveCollection(backend, storage.KeyProducts, products); err != nil {
			return nil, err
		}
	}

	return &Catalog{
		backend:  backend,
		log:      log,
		services: services,
		products: products,
	}, nil
}

func (c *Catalog) Services() []domain.Service {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.services)
}

func (c *Catalog) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.products)
}

func (c *Catalog) GetServiceByID(id string) (domain.Service, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, svc := range c.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return domain.Service{}, fmt.Errorf("service %s: %w", id, ErrNotFound)
}

func (c *Catalog) GetProductByID(id string) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
}

func validateService(svc domain.Service) error {
	if strings.TrimSpace(svc.ID) == "" {
		return fmt.Errorf("service id is required: %w", ErrInvalid)
	}
	if strings.TrimSpace(svc.Name) == "" {
		return fmt.Errorf("service name is required: %w", ErrInvalid)
	}
	if svc.Price < 0 {
		return fmt.Errorf("service price must not be negative: %w", ErrInvalid)
	}
	return nil
}

func validateProduct(p domain.Product) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("product id is required: %w", ErrInvalid)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product name is required: %w", ErrInvalid)
	}
	if p.Price < 0 {
		return fmt.Errorf("product price must not be negative: %w", ErrInvalid)
	}
	if p.Stock < 0 {
		return fmt.Errorf("product stock must not be negative: %w", ErrInvalid)
	}
	return nil
}

func (c *Catalog) AddService(svc domain.Service) error {
	if err := validateService(svc); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.services {
		if existing.ID == svc.ID {
			return fmt.Errorf("service %s already exists: %w", svc.ID, ErrInvalid)
		}
	}

	next := append([]domain.Service{svc}, c.services...)
	if err := saveCollection(c.backend, storage.KeyServices, next); err != nil {
		return err
	}
	c.services = next
	return nil
}

func (c *Catalog) UpdateService(svc domain.Service) error {
	if err := validateService(svc); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slices.IndexFunc(c.services, func(s domain.Service) bool { return s.ID == svc.ID })
	if idx < 0 {
		return fmt.Errorf("service %s: %w", svc.ID, ErrNotFound)
	}

	next := slices.Clone(c.services)
	next[idx] = svc
	if err := saveCollection(c.backend, storage.KeyServices, next); err != nil {
		return err
	}
	c.services = next
	return nil
}

func (c *Catalog) DeleteService(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slices.IndexFunc(c.services, func(s domain.Service) bool { return s.ID == id })
	if idx < 0 {
		return fmt.Errorf("service %s: %w", id, ErrNotFound)
	}

	next := slices.Delete(slices.Clone(c.services), idx, idx+1)
	if err := saveCollection(c.backend, storage.KeyServices, next); err != nil {
		return err
	}
	c.services = next
	return nil
}

func (c *Catalog) AddProduct(p domain.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.products {
		if existing.ID == p.ID {
			return fmt.Errorf("product %s already exists: %w", p.ID, ErrInvalid)
		}
	}

	next := append([]domain.Product{p}, c.products...)
	if err := saveCollection(c.backend, storage.KeyProducts, next); err != nil {
		return err
	}
	c.products = next
	return nil
}

func (c *Catalog) UpdateProduct(p domain.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slices.IndexFunc(c.products, func(existing domain.Product) bool { return existing.ID == p.ID })
	if idx < 0 {
		return fmt.Errorf("product %s: %w", p.ID, ErrNotFound)
	}

	next := slices.Clone(c.products)
	next[idx] = p
	if err := saveCollection(c.backend, storage.KeyProducts, next); err != nil {
		return err
	}
	c.products = next
	return nil
}

func (c *Catalog) DeleteProduct(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slices.IndexFunc(c.products, func(p domain.Product) bool { return p.ID == id })
	if idx < 0 {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	next := slices.Delete(slices.Clone(c.products), idx, idx+1)
	if err := saveCollection(c.backend, storage.KeyProducts, next); err != nil {
		return err
	}
	c.products = next
	return nil
}

// DecrementProductStock subtracts qty from the product's stock,
// flooring at zero. It returns the shortfall when the sale exceeded
// what was on hand so the caller can log the oversell.
func (c *Catalog) DecrementProductStock(id string, qty int) (int, error) {
	if qty < 0 {
		return 0, fmt.Errorf("quantity must not be negative: %w", ErrInvalid)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slices.IndexFunc(c.products, func(p domain.Product) bool { return p.ID == id })
	if idx < 0 {
		return 0, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	next := slices.Clone(c.products)
	shortfall := 0
	remaining := next[idx].Stock - qty
	if remaining < 0 {
		shortfall = -remaining
		remaining = 0
	}
	next[idx].Stock = remaining

	if err := saveCollection(c.backend, storage.KeyProducts, next); err != nil {
		return 0, err
	}
	c.products = next
	return shortfall, nil
}
