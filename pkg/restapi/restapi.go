// Package restapi exposes a read-only, CORS-open REST facade over a chain
// backend: block and transaction lookup, account balances, and the
// validator set.
package restapi

import "github.com/solelabs/mbongo/pkg/types"

// ErrorKind classifies a Backend failure so the router can pick the right
// HTTP status.
type ErrorKind int

const (
	// NotFound means the requested hash/address has no corresponding data.
	NotFound ErrorKind = iota
	// InvalidInput means the request itself was malformed (bad hex, wrong
	// length, out-of-range parameter).
	InvalidInput
	// Internal is a catch-all for unexpected backend failures.
	Internal
)

// Error is the error type Backend methods return; the router maps Kind to
// an HTTP status code.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// NewNotFoundError builds a NotFound Error.
func NewNotFoundError(msg string) error { return &Error{Kind: NotFound, Msg: msg} }

// NewInvalidInputError builds an InvalidInput Error.
func NewInvalidInputError(msg string) error { return &Error{Kind: InvalidInput, Msg: msg} }

// NewInternalError builds an Internal Error.
func NewInternalError(msg string) error { return &Error{Kind: Internal, Msg: msg} }

// BlockSummary is the list-view projection of a block.
type BlockSummary struct {
	Height    uint64     `json:"height"`
	Hash      types.Hash `json:"hash"`
	Timestamp uint64     `json:"timestamp"`
	TxCount   int        `json:"tx_count"`
}

// BlockDetail is the full projection of a block returned by GetBlock.
type BlockDetail struct {
	Header       types.BlockHeader   `json:"header"`
	Transactions []types.Transaction `json:"transactions"`
}

// Account is a read-oriented account projection: its current balance and
// next expected nonce.
type Account struct {
	Address   types.Address `json:"address"`
	Balance   types.Amount  `json:"balance"`
	NextNonce uint64        `json:"next_nonce"`
}

// Validator is a member of the active validator set.
type Validator struct {
	Address types.Address `json:"address"`
	Stake   types.Amount  `json:"stake"`
}

// Backend is the read-only data source the REST router dispatches to.
// Implementations translate "not found" / "bad request" / "unexpected
// failure" into the corresponding ErrorKind.
type Backend interface {
	ListBlocks(limit int) ([]BlockSummary, error)
	GetBlock(hash types.Hash) (BlockDetail, error)
	GetTransaction(hash types.Hash) (types.Transaction, error)
	GetAccount(addr types.Address) (Account, error)
	ListValidators() ([]Validator, error)
}
