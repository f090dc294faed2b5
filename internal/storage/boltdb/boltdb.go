package boltdb

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("barbershop")

// Backend stores every collection blob in a single bbolt bucket inside
// one data file. bbolt gives the same guarantees the browser build got
// from local storage: one device, one writer, synchronous writes.
type Backend struct {
	db *bolt.DB
}

func Open(path string) (*Backend, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open data file %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init data file %s: %w", path, err)
	}

	return &Backend{db: db}, nil
}

func (b *Backend) Get(key string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(bucketName).Get([]byte(key))
		if value == nil {
			return nil
		}
		out = make([]byte, len(value))
		copy(out, value)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Backend) Put(key string, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	})
}

func (b *Backend) Delete(key string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
}

func (b *Backend) Close() error {
	return b.db.Close()
}
