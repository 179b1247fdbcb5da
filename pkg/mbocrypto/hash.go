// Package mbocrypto collects the cryptographic primitives shared by the
// trie, node store, and transaction primitives: BLAKE3 hashing, Ed25519
// signing/verification, and the "0x"-prefixed hex formatting used for
// textual hashes and addresses.
package mbocrypto

import "lukechampine.com/blake3"

// Size is the digest length, in bytes, produced by Sum and by Hasher.
const Size = 32

// Sum returns the 32-byte BLAKE3 digest of data.
func Sum(data []byte) [Size]byte {
	return blake3.Sum256(data)
}

// Hasher is an incremental BLAKE3 hasher, used by ComputeTransactionsRoot
// to stream length-prefixed transaction encodings into a single digest
// without concatenating them first.
type Hasher struct {
	h *blake3.Hasher
}

// NewHasher returns a fresh incremental hasher producing 32-byte digests.
func NewHasher() *Hasher {
	return &Hasher{h: blake3.New(Size, nil)}
}

// Write feeds more bytes into the running hash. It never fails.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.h.Write(p)
}

// Sum32 finalizes the hash and returns the 32-byte digest. The hasher
// remains usable afterward, consistent with hash.Hash semantics.
func (h *Hasher) Sum32() [Size]byte {
	var out [Size]byte
	copy(out[:], h.h.Sum(nil))
	return out
}
