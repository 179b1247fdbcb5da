// Package store provides the content-addressed byte store the trie reads
// and writes nodes through: an in-memory map for tests and ephemeral use,
// and a Badger-backed store for persistence.
package store

import (
	"errors"

	"github.com/solelabs/mbongo/pkg/types"
)

// ErrNotFound is returned by Get when no value is stored under the given
// hash.
var ErrNotFound = errors.New("store: node not found")

// NodeStore is the content-addressed key/value contract the trie is built
// on: keys are hashes of the canonical encoding of the value stored under
// them, so Put is idempotent and Get never needs to verify integrity
// beyond what the caller already trusts.
type NodeStore interface {
	// Get returns the raw encoded bytes stored under hash, or ErrNotFound
	// if absent.
	Get(hash types.Hash) ([]byte, error)
	// Put stores encoded under hash. Storing the same hash twice with the
	// same bytes is a no-op; storing different bytes under an existing
	// hash is a caller error the store is not required to detect.
	Put(hash types.Hash, encoded []byte) error
	// Delete removes hash from the store. Deleting an absent hash is not
	// an error.
	Delete(hash types.Hash) error
	// Close releases any underlying resources (file handles, connections).
	Close() error
}
