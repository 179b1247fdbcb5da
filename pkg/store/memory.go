package store

import "github.com/solelabs/mbongo/pkg/types"

// MemoryStore is a NodeStore backed by a plain map. It follows the trie's
// single-writer contract and does no locking of its own.
type MemoryStore struct {
	data map[types.Hash][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[types.Hash][]byte)}
}

// Get implements NodeStore.
func (m *MemoryStore) Get(hash types.Hash) ([]byte, error) {
	v, ok := m.data[hash]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

// Put implements NodeStore.
func (m *MemoryStore) Put(hash types.Hash, encoded []byte) error {
	m.data[hash] = encoded
	return nil
}

// Delete implements NodeStore.
func (m *MemoryStore) Delete(hash types.Hash) error {
	delete(m.data, hash)
	return nil
}

// Close implements NodeStore. MemoryStore holds no external resources.
func (m *MemoryStore) Close() error {
	return nil
}
