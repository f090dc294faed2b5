package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/lenteradev69/barbershits/internal/storage"
)

var (
	// ErrNotFound is returned when a record id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalid is returned when a record fails validation.
	ErrInvalid = errors.New("invalid record")
)

// loadCollection reads and decodes the blob stored under key. A key
// that was never written reports found=false so the caller can seed
// defaults. A corrupt blob is logged and treated as an empty
// collection so a damaged data file degrades instead of wedging the
// register.
func loadCollection[T any](backend storage.Backend, key string, log *zap.SugaredLogger) ([]T, bool, error) {
	blob, err := backend.Get(key)
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	if blob == nil {
		return nil, false, nil
	}

	var items []T
	if err := json.Unmarshal(blob, &items); err != nil {
		log.Warnw("discarding corrupt collection", "key", key, "error", err)
		return nil, true, nil
	}
	return items, true, nil
}

func saveCollection[T any](backend storage.Backend, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	blob, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := backend.Put(key, blob); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
