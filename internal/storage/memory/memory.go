package memory

import "sync"

// Backend is a map-backed storage backend for tests and ephemeral runs.
type Backend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func New() *Backend {
	return &Backend{data: make(map[string][]byte)}
}

func (b *Backend) Get(key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (b *Backend) Put(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	b.data[key] = stored
	return nil
}

func (b *Backend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.data, key)
	return nil
}

func (b *Backend) Close() error {
	return nil
}
