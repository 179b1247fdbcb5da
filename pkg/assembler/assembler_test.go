package assembler

import (
	"testing"

	"github.com/solelabs/mbongo/pkg/types"
)

func TestAssembleBlockComputesTransactionsRoot(t *testing.T) {
	txs := []types.Transaction{
		{Type: types.TxTransfer, Nonce: 1},
		{Type: types.TxStake, Nonce: 2},
	}
	parent := types.Hash{0x01}
	stateRoot := types.Hash{0x02}

	block := AssembleBlock(parent, 5, 1690000000, txs, stateRoot)

	if block.Header.ParentHash != parent {
		t.Fatalf("ParentHash mismatch")
	}
	if block.Header.StateRoot != stateRoot {
		t.Fatalf("StateRoot mismatch")
	}
	if block.Header.Height != 5 {
		t.Fatalf("Height mismatch")
	}
	want := types.ComputeTransactionsRoot(txs)
	if block.Header.TransactionsRoot != want {
		t.Fatalf("TransactionsRoot = %v, want %v", block.Header.TransactionsRoot, want)
	}
	if len(block.Body.Transactions) != 2 {
		t.Fatalf("expected 2 transactions in body, got %d", len(block.Body.Transactions))
	}
}
