package wallet

import (
	"strings"
	"testing"

	"github.com/tyler-smith/go-bip39"
)

func TestGenerateMnemonicIsValid(t *testing.T) {
	phrase, err := GenerateMnemonic(256)
	if err != nil {
		t.Fatalf("GenerateMnemonic: %v", err)
	}
	if !bip39.IsMnemonicValid(phrase) {
		t.Fatalf("generated mnemonic failed validation: %q", phrase)
	}
	if len(strings.Fields(phrase)) != 24 {
		t.Fatalf("expected 24 words for 256 bits of entropy, got %d", len(strings.Fields(phrase)))
	}
}
