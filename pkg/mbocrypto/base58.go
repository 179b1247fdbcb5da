package mbocrypto

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"math/big"

	"golang.org/x/crypto/ripemd160"
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// AddressVersion tags the payload fed into Base58CheckEncode, distinguishing
// this chain's textual addresses from other networks that share the same
// Base58Check shape.
const AddressVersion = byte(0x00)

// ErrInvalidChecksum is returned by Base58CheckDecode when the trailing
// four-byte checksum does not match the decoded payload.
var ErrInvalidChecksum = errors.New("mbocrypto: base58check checksum mismatch")

// base58Encode renders input as Base58, preserving leading zero bytes as
// leading '1' characters.
func base58Encode(input []byte) []byte {
	var result []byte

	x := new(big.Int).SetBytes(input)
	base := big.NewInt(int64(len(base58Alphabet)))
	zero := big.NewInt(0)
	mod := &big.Int{}

	for x.Cmp(zero) != 0 {
		x.DivMod(x, base, mod)
		result = append(result, base58Alphabet[mod.Int64()])
	}
	reverseBytes(result)

	for _, b := range input {
		if b != 0x00 {
			break
		}
		result = append([]byte{base58Alphabet[0]}, result...)
	}
	return result
}

// base58Decode reverses base58Encode.
func base58Decode(input []byte) ([]byte, error) {
	result := big.NewInt(0)
	zeroBytes := 0
	for _, b := range input {
		if b != base58Alphabet[0] {
			break
		}
		zeroBytes++
	}

	payload := input[zeroBytes:]
	for _, b := range payload {
		charIndex := -1
		for i := 0; i < len(base58Alphabet); i++ {
			if b == base58Alphabet[i] {
				charIndex = i
				break
			}
		}
		if charIndex < 0 {
			return nil, errors.New("mbocrypto: invalid base58 character")
		}
		result.Mul(result, big.NewInt(58))
		result.Add(result, big.NewInt(int64(charIndex)))
	}

	decoded := result.Bytes()
	return append(make([]byte, zeroBytes), decoded...), nil
}

func reverseBytes(data []byte) {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
}

func doubleSHA256Checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:4]
}

// RIPEMD160SHA256 hashes pub through SHA-256 then RIPEMD-160, the digest
// a Base58Check address is built around.
func RIPEMD160SHA256(pub []byte) []byte {
	sum := sha256.Sum256(pub)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}

// Base58CheckEncode renders payload (typically a RIPEMD160SHA256 digest) as
// a versioned, checksummed Base58 string suitable for display.
func Base58CheckEncode(payload []byte) string {
	versioned := append([]byte{AddressVersion}, payload...)
	full := append(versioned, doubleSHA256Checksum(versioned)...)
	return string(base58Encode(full))
}

// Base58CheckDecode parses a string produced by Base58CheckEncode, verifying
// the embedded checksum and stripping the version byte.
func Base58CheckDecode(s string) ([]byte, error) {
	full, err := base58Decode([]byte(s))
	if err != nil {
		return nil, err
	}
	if len(full) < 5 {
		return nil, ErrInvalidChecksum
	}
	versioned := full[:len(full)-4]
	wantChecksum := full[len(full)-4:]
	if !bytes.Equal(wantChecksum, doubleSHA256Checksum(versioned)) {
		return nil, ErrInvalidChecksum
	}
	return versioned[1:], nil
}
