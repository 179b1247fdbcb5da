package types

import "testing"

func TestTransactionsRootDeterministic(t *testing.T) {
	tx1, _ := newTestTransaction(t, 1)
	tx2, _ := newTestTransaction(t, 2)
	txs := []Transaction{tx1, tx2}

	a := ComputeTransactionsRoot(txs)
	b := ComputeTransactionsRoot(txs)
	if a != b {
		t.Fatalf("root not deterministic across repeated calls")
	}
}

func TestTransactionsRootSensitiveToOrder(t *testing.T) {
	tx1, _ := newTestTransaction(t, 1)
	tx2, _ := newTestTransaction(t, 2)

	forward := ComputeTransactionsRoot([]Transaction{tx1, tx2})
	reversed := ComputeTransactionsRoot([]Transaction{tx2, tx1})
	if forward == reversed {
		t.Fatalf("root did not change when transaction order was reversed")
	}
}

func TestTransactionsRootEmpty(t *testing.T) {
	root := ComputeTransactionsRoot(nil)
	again := ComputeTransactionsRoot([]Transaction{})
	if root != again {
		t.Fatalf("empty transaction list should hash deterministically regardless of nil vs empty slice")
	}
}
