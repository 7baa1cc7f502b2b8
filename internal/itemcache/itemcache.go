// Package itemcache persists a local copy of the SAP item master (code and
// name) so mapping UIs can offer item pickers without a Service Layer round
// trip. The cache is a convenience; the bridge never reads it on the
// submission path.
package itemcache

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/gf-b1-bridge/go/internal/models"
)

const itemKeyPrefix = "item:"

// Store is an embedded key/value cache of items.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the cache at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open item cache: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying store.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put upserts a batch of items.
func (s *Store) Put(items []models.Item) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for _, item := range items {
			raw, err := json.Marshal(item)
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(itemKeyPrefix+item.ItemCode), raw); err != nil {
				return err
			}
		}
		return nil
	})
}

// Get looks up one item by code.
func (s *Store) Get(itemCode string) (*models.Item, error) {
	var item models.Item
	err := s.db.View(func(txn *badger.Txn) error {
		entry, err := txn.Get([]byte(itemKeyPrefix + itemCode))
		if err != nil {
			return err
		}
		return entry.Value(func(val []byte) error {
			return json.Unmarshal(val, &item)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read item cache: %w", err)
	}
	return &item, nil
}

// List returns all cached items in key order.
func (s *Store) List() ([]models.Item, error) {
	var items []models.Item
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(itemKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var item models.Item
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &item)
			})
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list item cache: %w", err)
	}
	return items, nil
}
