package types

import (
	"fmt"
	"math/big"
)

// Amount is a 128-bit unsigned quantity — coin value for a Transfer, stake
// size for a Stake, or compute-unit price for a ComputeTask — stored as a
// 16-byte big-endian magnitude so the codec encoding is fixed-width and the
// value survives round trips exactly, unlike a float or a machine uint64.
type Amount [16]byte

// ZeroAmount is the Amount holding zero.
var ZeroAmount = Amount{}

// AmountFromUint64 widens v into an Amount.
func AmountFromUint64(v uint64) Amount {
	var a Amount
	big.NewInt(0).SetUint64(v).FillBytes(a[:])
	return a
}

// AmountFromBigInt converts a non-negative big.Int into an Amount. It
// returns an error if v is negative or does not fit in 128 bits.
func AmountFromBigInt(v *big.Int) (Amount, error) {
	var a Amount
	if v.Sign() < 0 {
		return Amount{}, fmt.Errorf("types: amount %s is negative", v)
	}
	if v.BitLen() > 128 {
		return Amount{}, fmt.Errorf("types: amount %s overflows 128 bits", v)
	}
	v.FillBytes(a[:])
	return a, nil
}

// BigInt returns a as a big.Int.
func (a Amount) BigInt() *big.Int {
	return new(big.Int).SetBytes(a[:])
}

// String renders a in decimal.
func (a Amount) String() string {
	return a.BigInt().String()
}

// Add returns a+b, wrapping modulo 2^128 the way unsigned fixed-width
// arithmetic does.
func (a Amount) Add(b Amount) Amount {
	sum := new(big.Int).Add(a.BigInt(), b.BigInt())
	mod := new(big.Int).Lsh(big.NewInt(1), 128)
	sum.Mod(sum, mod)
	var out Amount
	sum.FillBytes(out[:])
	return out
}

// Cmp compares a and b as unsigned 128-bit integers.
func (a Amount) Cmp(b Amount) int {
	return a.BigInt().Cmp(b.BigInt())
}
