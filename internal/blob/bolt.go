package blob

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const boltBucket = "planner"

// Bolt implements Store on a single-file bbolt database.
type Bolt struct {
	db *bolt.DB
}

// NewBolt opens (or creates) the bbolt database and its bucket.
func NewBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("blob: open bolt db %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("blob: create bucket: %w", err)
	}
	return &Bolt{db: db}, nil
}

// Get returns a copy of the value under key.
func (b *Bolt) Get(key string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(boltBucket)).Get([]byte(key))
		if v == nil {
			return ErrNoKey
		}
		// The slice is only valid inside the transaction.
		out = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Put replaces the value under key.
func (b *Bolt) Put(key string, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put([]byte(key), value)
	})
}

// Delete removes key from the bucket.
func (b *Bolt) Delete(key string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Delete([]byte(key))
	})
}

// Close closes the underlying database.
func (b *Bolt) Close() error {
	return b.db.Close()
}
