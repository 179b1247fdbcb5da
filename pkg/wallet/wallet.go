// Package wallet will hold keystore management, transaction signing, and
// HD wallet support for end users.
//
// Not implemented here, beyond a single helper: GenerateMnemonic, which
// produces a BIP-39 recovery phrase. No key derivation from the phrase is
// provided, and no other package in this module calls the helper.
package wallet

import "github.com/tyler-smith/go-bip39"

// GenerateMnemonic returns a BIP-39 mnemonic recovery phrase of the
// requested entropy size in bits (128, 160, 192, 224, or 256).
func GenerateMnemonic(entropyBits int) (string, error) {
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}
