// Package types defines the wire-level primitives shared across the trie,
// store, and block-assembly layers: Hash, Address, Transaction, and Block.
package types

import "github.com/solelabs/mbongo/pkg/mbocrypto"

// Hash is a 32-byte content digest — a trie node identity, a block hash,
// or a transactions-root commitment. The zero value is the sentinel empty
// trie root.
type Hash [32]byte

// ZeroHash is the all-zero Hash, used as the empty trie's root and as the
// genesis block's parent hash.
var ZeroHash = Hash{}

// IsZero reports whether h is the all-zero Hash.
func (h Hash) IsZero() bool {
	return h == ZeroHash
}

// String renders h as a lowercase "0x"-prefixed hex string.
func (h Hash) String() string {
	return mbocrypto.EncodeHex(h[:])
}

// ParseHash parses a 64-hex-digit string into a Hash. The "0x" prefix is
// optional.
func ParseHash(s string) (Hash, error) {
	var h Hash
	b, err := mbocrypto.DecodeHex(s, len(h))
	if err != nil {
		return Hash{}, err
	}
	copy(h[:], b)
	return h, nil
}

// MarshalJSON renders h as its quoted hex string.
func (h Hash) MarshalJSON() ([]byte, error) {
	return marshalHexJSON(h[:])
}

// UnmarshalJSON parses h from its quoted hex string.
func (h *Hash) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHexJSON(data, len(h))
	if err != nil {
		return err
	}
	copy(h[:], b)
	return nil
}
