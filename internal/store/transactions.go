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

const defaultRecentLimit = 5

// Transactions is the append-mostly sales history, newest first.
type Transactions struct {
	mu           sync.RWMutex
	backend      storage.Backend
	log          *zap.SugaredLogger
	transactions []domain.Transaction
}

func NewTransactions(backend storage.Backend, log *zap.SugaredLogger) (*Transactions, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	transactions, _, err := loadCollection[domain.Transaction](backend, storage.KeyTransactions, log)
	if err != nil {
		return nil, err
	}

	return &Transactions{backend: backend, log: log, transactions: transactions}, nil
}

func validateTransaction(tx domain.Transaction) error {
	if strings.TrimSpace(tx.ID) == "" {
		return fmt.Errorf("transaction id is required: %w", ErrInvalid)
	}
	if len(tx.Items) == 0 {
		return fmt.Errorf("transaction needs at least one item: %w", ErrInvalid)
	}
	if tx.PaymentMethod != domain.PaymentCash && tx.PaymentMethod != domain.PaymentQris {
		return fmt.Errorf("unknown payment method %q: %w", tx.PaymentMethod, ErrInvalid)
	}
	return nil
}

// Append records a completed sale at the head of the history.
func (t *Transactions) Append(tx domain.Transaction) error {
	if err := validateTransaction(tx); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, existing := range t.transactions {
		if existing.ID == tx.ID {
			return fmt.Errorf("transaction %s already exists: %w", tx.ID, ErrInvalid)
		}
	}

	next := append([]domain.Transaction{tx}, t.transactions...)
	if err := saveCollection(t.backend, storage.KeyTransactions, next); err != nil {
		return err
	}
	t.transactions = next
	return nil
}

func (t *Transactions) All() []domain.Transaction {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.transactions)
}

func (t *Transactions) GetByID(id string) (domain.Transaction, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, tx := range t.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return domain.Transaction{}, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
}

// Recent returns the newest transactions. A non-positive limit uses
// the dashboard default of five.
func (t *Transactions) Recent(limit int) []domain.Transaction {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if limit > len(t.transactions) {
		limit = len(t.transactions)
	}
	return slices.Clone(t.transactions[:limit])
}

// ByCustomer returns the customer's purchases, newest first. Guest
// checkouts carry no customer and are never attributed to anyone.
func (t *Transactions) ByCustomer(customerID string) []domain.Transaction {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []domain.Transaction
	for _, tx := range t.transactions {
		if tx.Customer != nil && tx.Customer.ID == customerID {
			out = append(out, tx)
		}
	}
	return out
}

func (t *Transactions) Update(tx domain.Transaction) error {
	if err := validateTransaction(tx); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := slices.IndexFunc(t.transactions, func(existing domain.Transaction) bool { return existing.ID == tx.ID })
	if idx < 0 {
		return fmt.Errorf("transaction %s: %w", tx.ID, ErrNotFound)
	}

	next := slices.Clone(t.transactions)
	next[idx] = tx
	if err := saveCollection(t.backend, storage.KeyTransactions, next); err != nil {
		return err
	}
	t.transactions = next
	return nil
}

func (t *Transactions) Delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := slices.IndexFunc(t.transactions, func(tx domain.Transaction) bool { return tx.ID == id })
	if idx < 0 {
		return fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}

	next := slices.Delete(slices.Clone(t.transactions), idx, idx+1)
	if err := saveCollection(t.backend, storage.KeyTransactions, next); err != nil {
		return err
	}
	t.transactions = next
	return nil
}

// Clear wipes the whole history. Used by the data-management reset.
func (t *Transactions) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := saveCollection(t.backend, storage.KeyTransactions, []domain.Transaction{}); err != nil {
		return err
	}
	t.transactions = nil
	return nil
}
