package types

import "github.com/solelabs/mbongo/pkg/mbocrypto"

// Address is a 32-byte Ed25519 public key identifying a transaction sender
// or receiver.
type Address [32]byte

// ZeroAddress is the all-zero Address.
var ZeroAddress = Address{}

// IsZero reports whether a is the all-zero Address.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// String renders a as a lowercase "0x"-prefixed hex string.
func (a Address) String() string {
	return mbocrypto.EncodeHex(a[:])
}

// Base58Check renders a using the chain's versioned, checksummed Base58
// textual form, the display format wallets and block explorers prefer
// over raw hex.
func (a Address) Base58Check() string {
	return mbocrypto.Base58CheckEncode(mbocrypto.RIPEMD160SHA256(a[:]))
}

// ParseAddress parses a 64-hex-digit string into an Address. The "0x"
// prefix is optional.
func ParseAddress(s string) (Address, error) {
	var a Address
	b, err := mbocrypto.DecodeHex(s, len(a))
	if err != nil {
		return Address{}, err
	}
	copy(a[:], b)
	return a, nil
}

// MarshalJSON renders a as its quoted hex string.
func (a Address) MarshalJSON() ([]byte, error) {
	return marshalHexJSON(a[:])
}

// UnmarshalJSON parses a from its quoted hex string.
func (a *Address) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHexJSON(data, len(a))
	if err != nil {
		return err
	}
	copy(a[:], b)
	return nil
}
