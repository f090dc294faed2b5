package store

import (
	"errors"
	"testing"

	"github.com/lenteradev69/barbershits/internal/domain"
	"github.com/lenteradev69/barbershits/internal/storage"
	"github.com/lenteradev69/barbershits/internal/storage/memory"
)

func newTestCatalog(t *testing.T) (*Catalog, *memory.Backend) {
	t.Helper()
	backend := memory.New()
	catalog, err := NewCatalog(backend, nil)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	return catalog, backend
}

func TestCatalogSeedsDefaultsOnFirstOpen(t *testing.T) {
	catalog, backend := newTestCatalog(t)

	if got := len(catalog.Services()); got != 5 {
		t.Fatalf("expected 5 seeded services, got %d", got)
	}
	if got := len(catalog.Products()); got != 3 {
		t.Fatalf("expected 3 seeded products, got %d", got)
	}

	blob, err := backend.Get(storage.KeyServices)
	if err != nil {
		t.Fatalf("get services blob: %v", err)
	}
	if blob == nil {
		t.Fatalf("seed must be written through to the backend")
	}
}

func TestCatalogPersistsAcrossReopen(t *testing.T) {
	catalog, backend := newTestCatalog(t)

	svc := domain.Service{ID: "s9", Name: "Hot Towel Shave", Price: 55000, Category: "Grooming"}
	if err := catalog.AddService(svc); err != nil {
		t.Fatalf("add service: %v", err)
	}

	reopened, err := NewCatalog(backend, nil)
	if err != nil {
		t.Fatalf("reopen catalog: %v", err)
	}
	got, err := reopened.GetServiceByID("s9")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got.Name != "Hot Towel Shave" || got.Price != 55000 {
		t.Fatalf("service mismatch after reopen: %+v", got)
	}

	services := reopened.Services()
	if services[0].ID != "s9" {
		t.Fatalf("new service must be first, got %s", services[0].ID)
	}
}

func TestCatalogUpdateUnknownServiceReturnsNotFound(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	err := catalog.UpdateService(domain.Service{ID: "missing", Name: "X", Price: 1000})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := catalog.DeleteService("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}

func TestCatalogRejectsInvalidRecords(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	if err := catalog.AddService(domain.Service{ID: "", Name: "X", Price: 100}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for empty id, got %v", err)
	}
	if err := catalog.AddService(domain.Service{ID: "sX", Name: "  ", Price: 100}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for blank name, got %v", err)
	}
	if err := catalog.AddProduct(domain.Product{ID: "pX", Name: "X", Price: -1}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for negative price, got %v", err)
	}
	if err := catalog.AddProduct(domain.Product{ID: "pX", Name: "X", Price: 100, Stock: -1}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for negative stock, got %v", err)
	}
	if err := catalog.AddService(domain.Service{ID: "s1", Name: "Dup", Price: 100}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for duplicate id, got %v", err)
	}
}

func TestDecrementProductStockFloorsAtZero(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	// p2 seeds with stock 8.
	shortfall, err := catalog.DecrementProductStock("p2", 3)
	if err != nil {
		t.Fatalf("decrement: %v", err)
	}
	if shortfall != 0 {
		t.Fatalf("expected no shortfall, got %d", shortfall)
	}

	p, err := catalog.GetProductByID("p2")
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if p.Stock != 5 {
		t.Fatalf("expected stock 5, got %d", p.Stock)
	}

	shortfall, err = catalog.DecrementProductStock("p2", 9)
	if err != nil {
		t.Fatalf("decrement past zero: %v", err)
	}
	if shortfall != 4 {
		t.Fatalf("expected shortfall 4, got %d", shortfall)
	}
	p, _ = catalog.GetProductByID("p2")
	if p.Stock != 0 {
		t.Fatalf("stock must floor at zero, got %d", p.Stock)
	}
}

func TestCatalogToleratesCorruptBlob(t *testing.T) {
	backend := memory.New()
	if err := backend.Put(storage.KeyServices, []byte("{not json")); err != nil {
		t.Fatalf("put corrupt blob: %v", err)
	}

	catalog, err := NewCatalog(backend, nil)
	if err != nil {
		t.Fatalf("open with corrupt services: %v", err)
	}
	if got := len(catalog.Services()); got != 0 {
		t.Fatalf("corrupt collection must load empty, got %d services", got)
	}
	// Products key was untouched, so it still seeds.
	if got := len(catalog.Products()); got != 3 {
		t.Fatalf("expected 3 seeded products, got %d", got)
	}
}
