package types

import (
	"encoding/json"
	"fmt"

	"github.com/solelabs/mbongo/pkg/mbocrypto"
)

func marshalHexJSON(b []byte) ([]byte, error) {
	return json.Marshal(mbocrypto.EncodeHex(b))
}

func unmarshalHexJSON(data []byte, n int) ([]byte, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("types: %w", err)
	}
	return mbocrypto.DecodeHex(s, n)
}
