package mbocrypto

import "crypto/ed25519"

// SignatureSize is the length, in bytes, of an Ed25519 signature.
const SignatureSize = ed25519.SignatureSize

// PublicKeySize is the length, in bytes, of an Ed25519 public key — and
// therefore of an Address.
const PublicKeySize = ed25519.PublicKeySize

// GenerateKey creates a new Ed25519 key pair.
func GenerateKey() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	return ed25519.GenerateKey(nil)
}

// Sign signs message with priv, returning a 64-byte signature.
func Sign(priv ed25519.PrivateKey, message []byte) []byte {
	return ed25519.Sign(priv, message)
}

// Verify reports whether sig is a valid Ed25519 signature over message
// under pub. A public key of the wrong length is treated as an invalid
// signature rather than a panic or error.
func Verify(pub []byte, message, sig []byte) bool {
	if len(pub) != PublicKeySize || len(sig) != SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), message, sig)
}
