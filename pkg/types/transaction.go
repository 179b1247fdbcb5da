package types

import (
	"fmt"

	"github.com/solelabs/mbongo/pkg/codec"
	"github.com/solelabs/mbongo/pkg/mbocrypto"
)

// TransactionType discriminates the kinds of transaction this chain's
// state-transition function understands. Each is a distinct codec
// discriminant; adding a variant is a breaking wire change.
type TransactionType byte

const (
	// TxTransfer moves Amount of the native token from Sender to Receiver.
	TxTransfer TransactionType = iota
	// TxComputeTask assigns or pays for a compute task; Receiver identifies
	// the task or worker and Amount the compute-unit price.
	TxComputeTask
	// TxStake stakes Amount to the validator or staking contract named by
	// Receiver.
	TxStake
)

// String names the transaction type for logging and CLI output.
func (t TransactionType) String() string {
	switch t {
	case TxTransfer:
		return "transfer"
	case TxComputeTask:
		return "compute_task"
	case TxStake:
		return "stake"
	default:
		return fmt.Sprintf("unknown(%d)", byte(t))
	}
}

func parseTransactionType(tag byte) (TransactionType, error) {
	switch TransactionType(tag) {
	case TxTransfer, TxComputeTask, TxStake:
		return TransactionType(tag), nil
	default:
		return 0, fmt.Errorf("types: unknown transaction type discriminant %d", tag)
	}
}

// Transaction is a signed state-transition request: a transfer, a compute
// task assignment, or a stake deposit.
type Transaction struct {
	Type      TransactionType
	Sender    Address
	Receiver  Address
	Amount    Amount
	Nonce     uint64
	Signature [64]byte
}

// SigningPayload canonically encodes every field except Signature, in
// field order, via pkg/codec. This is exactly the byte string Sign and
// VerifySignature operate over.
func (tx Transaction) SigningPayload() []byte {
	e := codec.NewEncoder()
	e.PutDiscriminant(byte(tx.Type))
	e.PutFixed(tx.Sender[:])
	e.PutFixed(tx.Receiver[:])
	e.PutFixed(tx.Amount[:])
	e.PutCompactUint64(tx.Nonce)
	return e.Bytes()
}

// Sign computes the Ed25519 signature over SigningPayload() under priv and
// stores it in Signature. priv must correspond to tx.Sender.
func (tx *Transaction) Sign(priv []byte) {
	sig := mbocrypto.Sign(priv, tx.SigningPayload())
	copy(tx.Signature[:], sig)
}

// VerifySignature reports whether Signature is a valid Ed25519 signature
// over SigningPayload() under Sender.
func (tx Transaction) VerifySignature() bool {
	return mbocrypto.Verify(tx.Sender[:], tx.SigningPayload(), tx.Signature[:])
}

// Encode canonically encodes the full transaction, signature included, the
// form used inside block bodies and the transactions root.
func (tx Transaction) Encode() []byte {
	e := codec.NewEncoder()
	e.PutDiscriminant(byte(tx.Type))
	e.PutFixed(tx.Sender[:])
	e.PutFixed(tx.Receiver[:])
	e.PutFixed(tx.Amount[:])
	e.PutCompactUint64(tx.Nonce)
	e.PutFixed(tx.Signature[:])
	return e.Bytes()
}

// DecodeTransaction reverses Encode.
func DecodeTransaction(data []byte) (Transaction, error) {
	d := codec.NewDecoder(data)
	tag, err := d.ReadDiscriminant()
	if err != nil {
		return Transaction{}, err
	}
	txType, err := parseTransactionType(tag)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", codec.ErrMalformed, err)
	}
	sender, err := d.ReadFixed(len(Address{}))
	if err != nil {
		return Transaction{}, err
	}
	receiver, err := d.ReadFixed(len(Address{}))
	if err != nil {
		return Transaction{}, err
	}
	amount, err := d.ReadFixed(len(Amount{}))
	if err != nil {
		return Transaction{}, err
	}
	nonce, err := d.ReadCompactUint64()
	if err != nil {
		return Transaction{}, err
	}
	sig, err := d.ReadFixed(64)
	if err != nil {
		return Transaction{}, err
	}
	if !d.Done() {
		return Transaction{}, fmt.Errorf("%w: trailing bytes after transaction", codec.ErrMalformed)
	}

	var tx Transaction
	tx.Type = txType
	copy(tx.Sender[:], sender)
	copy(tx.Receiver[:], receiver)
	copy(tx.Amount[:], amount)
	tx.Nonce = nonce
	copy(tx.Signature[:], sig)
	return tx, nil
}
