package types

import (
	"encoding/json"
	"testing"
)

func TestHashStringParseRoundTrip(t *testing.T) {
	h := Hash{0x01, 0x02, 0xff}
	s := h.String()
	got, err := ParseHash(s)
	if err != nil {
		t.Fatalf("ParseHash: %v", err)
	}
	if got != h {
		t.Fatalf("round trip mismatch: %v != %v", got, h)
	}
	if len(s) != 2+64 {
		t.Fatalf("unexpected hash string length: %q", s)
	}
}

func TestParseHashAcceptsOptionalPrefix(t *testing.T) {
	h := Hash{0x01, 0x02, 0xff}
	s := h.String()
	got, err := ParseHash(s[2:])
	if err != nil {
		t.Fatalf("ParseHash without 0x prefix: %v", err)
	}
	if got != h {
		t.Fatalf("round trip mismatch: %v != %v", got, h)
	}
}

func TestHashJSONRoundTrip(t *testing.T) {
	h := Hash{0xAB, 0xCD}
	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got Hash
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != h {
		t.Fatalf("JSON round trip mismatch")
	}
}

func TestZeroHashIsZero(t *testing.T) {
	if !ZeroHash.IsZero() {
		t.Fatalf("ZeroHash.IsZero() returned false")
	}
	h := Hash{1}
	if h.IsZero() {
		t.Fatalf("non-zero hash reported IsZero()")
	}
}
