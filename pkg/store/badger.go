package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v3"

	"github.com/solelabs/mbongo/pkg/types"
)

func badgerOptions(path string) badger.Options {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	opts.ValueLogFileSize = 16 << 20 // 16 MB max value log file size
	opts.MemTableSize = 8 << 20      // 8 MB memtable
	opts.BlockCacheSize = 1 << 20    // 1 MB cache
	opts.NumVersionsToKeep = 1

	opts.VerifyValueChecksum = true
	opts.DetectConflicts = true

	return opts
}

// BadgerStore is a NodeStore backed by a Badger v3 database on disk.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens (creating if necessary) a Badger database at path.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return nil, fmt.Errorf("store: create db directory %s: %w", path, err)
	}
	db, err := badger.Open(badgerOptions(path))
	if err != nil {
		return nil, fmt.Errorf("store: open badger db at %s: %w", path, err)
	}
	return &BadgerStore{db: db}, nil
}

// Get implements NodeStore. It returns the stored bytes without decoding
// them. A Badger read failure other than a missing key is treated as
// "missing": it is returned joined with ErrNotFound, so a caller that wants
// the underlying error can still errors.Is / errors.As it.
func (b *BadgerStore) Get(hash types.Hash) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(hash[:])
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrNotFound, err)
	}
	return value, nil
}

// Put implements NodeStore.
func (b *BadgerStore) Put(hash types.Hash, encoded []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(hash[:], encoded)
	})
}

// Delete implements NodeStore.
func (b *BadgerStore) Delete(hash types.Hash) error {
	return b.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(hash[:])
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// Close implements NodeStore.
func (b *BadgerStore) Close() error {
	return b.db.Close()
}
