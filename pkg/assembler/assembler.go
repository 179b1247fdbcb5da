// Package assembler builds blocks from a parent hash, a state root, and an
// ordered transaction list, deriving the transactions root the way
// pkg/types prescribes.
package assembler

import "github.com/solelabs/mbongo/pkg/types"

// AssembleBlock builds a Block whose TransactionsRoot commits to txs and
// whose StateRoot is the caller-supplied trie root. It assumes a single
// writer and a single root in flight; it performs no pruning or
// versioning of its own.
func AssembleBlock(parent types.Hash, height, timestamp uint64, txs []types.Transaction, stateRoot types.Hash) types.Block {
	body := types.BlockBody{Transactions: txs}
	header := types.BlockHeader{
		ParentHash:       parent,
		StateRoot:        stateRoot,
		TransactionsRoot: types.ComputeTransactionsRoot(txs),
		Timestamp:        timestamp,
		Height:           height,
	}
	return types.Block{Header: header, Body: body}
}
