package store

import (
	"errors"
	"testing"

	"github.com/lenteradev69/barbershits/internal/domain"
	"github.com/lenteradev69/barbershits/internal/storage/memory"
)

func TestCustomersSeedOnlyWhenRequested(t *testing.T) {
	unseeded, err := NewCustomers(memory.New(), nil, false)
	if err != nil {
		t.Fatalf("new customers: %v", err)
	}
	if got := len(unseeded.All()); got != 0 {
		t.Fatalf("expected empty store without seeding, got %d", got)
	}

	seeded, err := NewCustomers(memory.New(), nil, true)
	if err != nil {
		t.Fatalf("new seeded customers: %v", err)
	}
	if got := len(seeded.All()); got != 3 {
		t.Fatalf("expected 3 sample customers, got %d", got)
	}
}

func TestCustomersCRUD(t *testing.T) {
	backend := memory.New()
	customers, err := NewCustomers(backend, nil, false)
	if err != nil {
		t.Fatalf("new customers: %v", err)
	}

	cust := domain.Customer{ID: "c10", Name: "Rina Hartati", Phone: "0856", Visits: 1}
	if err := customers.Add(cust); err != nil {
		t.Fatalf("add: %v", err)
	}

	cust.Phone = "0857"
	if err := customers.Update(cust); err != nil {
		t.Fatalf("update: %v", err)
	}

	reopened, err := NewCustomers(backend, nil, false)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.GetByID("c10")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got.Phone != "0857" {
		t.Fatalf("expected updated phone, got %q", got.Phone)
	}

	if err := reopened.Delete("c10"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := reopened.GetByID("c10"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestRecordVisitIncrementsAndPersists(t *testing.T) {
	backend := memory.New()
	customers, err := NewCustomers(backend, nil, true)
	if err != nil {
		t.Fatalf("new customers: %v", err)
	}

	before, _ := customers.GetByID("c1")
	if err := customers.RecordVisit("c1"); err != nil {
		t.Fatalf("record visit: %v", err)
	}

	reopened, err := NewCustomers(backend, nil, false)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	after, err := reopened.GetByID("c1")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if after.Visits != before.Visits+1 {
		t.Fatalf("expected visits %d, got %d", before.Visits+1, after.Visits)
	}

	if err := customers.RecordVisit("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown customer, got %v", err)
	}
}
