package storage

// Backend is the single-device key-value store the collections persist
// into. Each key holds one JSON blob that is read and rewritten whole,
// the way the browser build used local storage.
type Backend interface {
	// Get returns the blob stored under key, or (nil, nil) when the key
	// has never been written.
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Keys for the persisted collections. The names are carried over from
// the original data files so an existing store opens unchanged.
const (
	KeyTransactions = "barbershop_transactions"
	KeyServices     = "barbershop_services"
	KeyProducts     = "barbershop_products"
	KeyCustomers    = "barbershop_customers"
)
