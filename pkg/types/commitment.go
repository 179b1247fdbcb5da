package types

import (
	"encoding/binary"

	"github.com/solelabs/mbongo/pkg/mbocrypto"
)

// ComputeTransactionsRoot commits to an ordered transaction list by
// streaming each transaction's canonical encoding, length-prefixed with a
// 4-byte little-endian uint32, into a single BLAKE3 hasher. Swapping the
// order of two transactions changes the root; re-running over the same
// slice is deterministic.
func ComputeTransactionsRoot(txs []Transaction) Hash {
	h := mbocrypto.NewHasher()
	var lenBuf [4]byte
	for _, tx := range txs {
		encoded := tx.Encode()
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(encoded)))
		h.Write(lenBuf[:])
		h.Write(encoded)
	}
	return Hash(h.Sum32())
}
