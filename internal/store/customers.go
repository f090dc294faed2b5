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

// Customers is the registered-customer collection. Walk-ins never enter
// it; they check out as guests.
type Customers struct {
	mu        sync.RWMutex
	backend   storage.Backend
	log       *zap.SugaredLogger
	customers []domain.Customer
}

// NewCustomers loads the collection from the backend. When the key was
// never written it starts empty unless seed is true, in which case the
// sample customers are written so a fresh install has data to demo with.
func NewCustomers(backend storage.Backend, log *zap.SugaredLogger, seed bool) (*Customers, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	customers, found, err := loadCollection[domain.Customer](backend, storage.KeyCustomers, log)
	if err != nil {
		return nil, err
	}
	if !found && seed {
		customers = DefaultCustomers()
		if err := saveCollection(backend, storage.KeyCustomers, customers); err != nil {
			return nil, err
		}
	}

	return &Customers{backend: backend, log: log, customers: customers}, nil
}

func (c *Customers) All() []domain.Customer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.customers)
}

func (c *Customers) GetByID(id string) (domain.Customer, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, cust := range c.customers {
		if cust.ID == id {
			return cust, nil
		}
	}
	return domain.Customer{}, fmt.Errorf("customer %s: %w", id, ErrNotFound)
}

func validateCustomer(cust domain.Customer) error {
	if strings.TrimSpace(cust.ID) == "" {
		return fmt.Errorf("customer id is required: %w", ErrInvalid)
	}
	if strings.TrimSpace(cust.Name) == "" {
		return fmt.Errorf("customer name is required: %w", ErrInvalid)
	}
	if cust.Visits < 0 {
		return fmt.Errorf("customer visits must not be negative: %w", ErrInvalid)
	}
	return nil
}

func (c *Customers) Add(cust domain.Customer) error {
	if err := validateCustomer(cust); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.customers {
		if existing.ID == cust.ID {
			return fmt.Errorf("customer %s already exists: %w", cust.ID, ErrInvalid)
		}
	}

	next := append([]domain.Customer{cust}, c.customers...)
	if err := saveCollection(c.backend, storage.KeyCustomers, next); err != nil {
		return err
	}
	c.customers = next
	return nil
}

func (c *Customers) Update(cust domain.Customer) error {
	if err := validateCustomer(cust); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slices.IndexFunc(c.customers, func(existing domain.Customer) bool { return existing.ID == cust.ID })
	if idx < 0 {
		return fmt.Errorf("customer %s: %w", cust.ID, ErrNotFound)
	}

	next := slices.Clone(c.customers)
	next[idx] = cust
	if err := saveCollection(c.backend, storage.KeyCustomers, next); err != nil {
		return err
	}
	c.customers = next
	return nil
}

func (c *Customers) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slices.IndexFunc(c.customers, func(cust domain.Customer) bool { return cust.ID == id })
	if idx < 0 {
		return fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}

	next := slices.Delete(slices.Clone(c.customers), idx, idx+1)
	if err := saveCollection(c.backend, storage.KeyCustomers, next); err != nil {
		return err
	}
	c.customers = next
	return nil
}

// RecordVisit bumps the customer's visit counter after a completed
// checkout. Guests have no record, so callers skip nil customers.
func (c *Customers) RecordVisit(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slices.IndexFunc(c.customers, func(cust domain.Customer) bool { return cust.ID == id })
	if idx < 0 {
		return fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}

	next := slices.Clone(c.customers)
	next[idx].Visits++
	if err := saveCollection(c.backend, storage.KeyCustomers, next); err != nil {
		return err
	}
	c.customers = next
	return nil
}
