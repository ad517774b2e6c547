package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const boltBucket = "documents"

// BoltStore implements Store over a single bbolt bucket. bbolt admits one
// write transaction at a time, so Update is serialized by the engine.
type BoltStore struct {
	db     *bolt.DB
	bucket []byte
}

// OpenBolt opens (or creates) a bbolt-backed store at the given path.
func OpenBolt(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt database: %w", err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &BoltStore{db: db, bucket: []byte(boltBucket)}, nil
}

func (s *BoltStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	var value []byte
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(s.bucket).Get([]byte(key))
		if v != nil {
			value = append([]byte(nil), v...)
			found = true
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("reading document %q: %w", key, err)
	}
	return value, found, nil
}

func (s *BoltStore) Set(_ context.Context, key string, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("writing document %q: %w", key, err)
	}
	return nil
}

func (s *BoltStore) Update(_ context.Context, key string, fn UpdateFunc) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		old := b.Get([]byte(key))
		found := old != nil
		if found {
			old = append([]byte(nil), old...)
		}
		next, err := fn(old, found)
		if err != nil {
			return err
		}
		if err := b.Put([]byte(key), next); err != nil {
			return fmt.Errorf("writing document %q: %w", key, err)
		}
		return nil
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
