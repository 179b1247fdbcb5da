package types

// BlockHeader carries chain linkage and the commitments a light client
// would verify against: the parent's hash, the post-execution state root,
// and the transactions root.
type BlockHeader struct {
	ParentHash       Hash
	StateRoot        Hash
	TransactionsRoot Hash
	Timestamp        uint64
	Height           uint64
}

// BlockBody holds the ordered transactions a block commits to. Order is
// significant: TransactionsRoot depends on it.
type BlockBody struct {
	Transactions []Transaction
}

// Block pairs a header with its body.
type Block struct {
	Header BlockHeader
	Body   BlockBody
}
