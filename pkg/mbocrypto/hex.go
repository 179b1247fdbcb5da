package mbocrypto

import (
	"encoding/hex"
	"fmt"
)

// EncodeHex renders b as a lowercase "0x"-prefixed hex string, the textual
// form used by Hash and Address when marshaling to JSON or printing to the
// CLI.
func EncodeHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// DecodeHex parses a hex string into exactly n bytes. A leading "0x" or
// "0X" is stripped if present, but is not required. An odd-length body,
// invalid hex digit, or wrong decoded length is reported as an error
// rather than silently truncated or padded.
func DecodeHex(s string, n int) ([]byte, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("mbocrypto: invalid hex in %q: %w", s, err)
	}
	if len(b) != n {
		return nil, fmt.Errorf("mbocrypto: hex string %q decodes to %d bytes, want %d", s, len(b), n)
	}
	return b, nil
}
