package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// BoltState implements Store with a Bolt key-value database. Every contract
// id gets its own bucket, so one file can hold several instances.
type BoltState struct {
	errOnce
	db     *bolt.DB
	bucket []byte
}

// OpenBolt opens (or creates) the database at path.
func OpenBolt(path string, contractID string) (*BoltState, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt state: %w", err)
	}
	s := &BoltState{db: db, bucket: []byte(contractID)}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket %q: %w", contractID, err)
	}
	return s, nil
}

func (s *BoltState) view(fn func(*bolt.Bucket) error) {
	err := s.db.View(func(tx *bolt.Tx) error {
		return fn(tx.Bucket(s.bucket))
	})
	if err != nil {
		s.onErr(err)
	}
}

func (s *BoltState) update(fn func(*bolt.Bucket) error) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return fn(tx.Bucket(s.bucket))
	})
	if err != nil {
		s.onErr(err)
	}
}

func (s *BoltState) Set(key, value string) {
	s.update(func(b *bolt.Bucket) error {
		return b.Put([]byte(key), []byte(value))
	})
}

func (s *BoltState) Get(key string) *string {
	var out *string
	s.view(func(b *bolt.Bucket) error {
		// values are only valid inside the tx
		if v := b.Get([]byte(key)); v != nil {
			str := string(v)
			out = &str
		}
		return nil
	})
	return out
}

// Keys lists stored keys in byte order.
func (s *BoltState) Keys() []string {
	var keys []string
	s.view(func(b *bolt.Bucket) error {
		return b.ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys
}

func (s *BoltState) Close() error {
	return s.db.Close()
}
