// Package codec implements the canonical byte encoding shared by trie node
// serialization and transaction/signing-payload hashing. It deliberately
// mirrors the shape of SCALE's "Compact" integer encoding (a 2-bit length
// tag in the low bits of the first byte) so that a single encoder can serve
// both consumers without drifting out of sync.
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrMalformed is returned (possibly wrapped) whenever decoding hits
// truncated input, an unknown discriminant, or a length that overruns the
// remaining buffer.
var ErrMalformed = errors.New("codec: malformed encoding")

func malformed(reason string) error {
	return fmt.Errorf("%w: %s", ErrMalformed, reason)
}

// Encoder accumulates canonically-encoded fields. The zero value is ready
// to use.
type Encoder struct {
	buf bytes.Buffer
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the accumulated encoding.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// PutFixed writes b verbatim, with no length prefix (used for fixed-size
// arrays such as a Hash, Address, or signature).
func (e *Encoder) PutFixed(b []byte) {
	e.buf.Write(b)
}

// PutDiscriminant writes a one-byte tag identifying a tagged-union variant.
func (e *Encoder) PutDiscriminant(tag byte) {
	e.buf.WriteByte(tag)
}

// PutBool writes a one-byte boolean (0 or 1).
func (e *Encoder) PutBool(v bool) {
	if v {
		e.buf.WriteByte(1)
	} else {
		e.buf.WriteByte(0)
	}
}

// PutCompactUint64 writes v using the compact scheme: the low two bits of
// the first byte select a width class (1, 2, 4, or 9 bytes in total). In
// the first three classes the remaining bits of that first byte (and any
// following bytes) hold the value little-endian; in the 9-byte class the
// first byte is only the tag.
//
//	00 -> 1 byte total,  6 value bits in byte 0
//	01 -> 2 bytes total, 14 value bits, byte 0 low bits + byte 1
//	10 -> 4 bytes total, 30 value bits
//	11 -> 9 bytes total: tag byte is 0b11, followed by 8 raw LE bytes
func (e *Encoder) PutCompactUint64(v uint64) {
	switch {
	case v < 1<<6:
		e.buf.WriteByte(byte(v << 2))
	case v < 1<<14:
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(v<<2)|0b01)
		e.buf.Write(b[:])
	case v < 1<<30:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(v<<2)|0b10)
		e.buf.Write(b[:])
	default:
		e.buf.WriteByte(0b11)
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], v)
		e.buf.Write(b[:])
	}
}

// PutBytes writes a compact length prefix followed by the raw bytes.
func (e *Encoder) PutBytes(b []byte) {
	e.PutCompactUint64(uint64(len(b)))
	e.buf.Write(b)
}

// PutOption writes the presence byte and, if present, runs write to encode
// the value.
func (e *Encoder) PutOption(present bool, write func()) {
	e.PutBool(present)
	if present {
		write()
	}
}

// Decoder consumes a canonically-encoded byte slice in order.
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder wraps data for sequential decoding.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Remaining reports how many bytes have not yet been consumed.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.pos
}

// Done reports whether every byte has been consumed.
func (d *Decoder) Done() bool {
	return d.pos >= len(d.data)
}

// ReadFixed reads exactly n bytes.
func (d *Decoder) ReadFixed(n int) ([]byte, error) {
	if n < 0 || d.Remaining() < n {
		return nil, malformed("truncated fixed-size field")
	}
	out := d.data[d.pos : d.pos+n]
	d.pos += n
	return out, nil
}

// ReadDiscriminant reads a one-byte tagged-union tag.
func (d *Decoder) ReadDiscriminant() (byte, error) {
	if d.Remaining() < 1 {
		return 0, malformed("truncated discriminant")
	}
	tag := d.data[d.pos]
	d.pos++
	return tag, nil
}

// ReadBool reads a one-byte boolean.
func (d *Decoder) ReadBool() (bool, error) {
	if d.Remaining() < 1 {
		return false, malformed("truncated bool")
	}
	v := d.data[d.pos]
	d.pos++
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, malformed("bool byte not 0 or 1")
	}
}

// ReadCompactUint64 reads a value written by PutCompactUint64.
func (d *Decoder) ReadCompactUint64() (uint64, error) {
	if d.Remaining() < 1 {
		return 0, malformed("truncated compact int")
	}
	tag := d.data[d.pos] & 0b11
	switch tag {
	case 0b00:
		v := uint64(d.data[d.pos] >> 2)
		d.pos++
		return v, nil
	case 0b01:
		if d.Remaining() < 2 {
			return 0, malformed("truncated compact int (2-byte form)")
		}
		raw := binary.LittleEndian.Uint16(d.data[d.pos : d.pos+2])
		d.pos += 2
		return uint64(raw >> 2), nil
	case 0b10:
		if d.Remaining() < 4 {
			return 0, malformed("truncated compact int (4-byte form)")
		}
		raw := binary.LittleEndian.Uint32(d.data[d.pos : d.pos+4])
		d.pos += 4
		return uint64(raw >> 2), nil
	default: // 0b11
		d.pos++
		if d.Remaining() < 8 {
			return 0, malformed("truncated compact int (8-byte form)")
		}
		v := binary.LittleEndian.Uint64(d.data[d.pos : d.pos+8])
		d.pos += 8
		return v, nil
	}
}

// ReadBytes reads a compact length prefix followed by that many raw bytes.
func (d *Decoder) ReadBytes() ([]byte, error) {
	n, err := d.ReadCompactUint64()
	if err != nil {
		return nil, err
	}
	return d.ReadFixed(int(n))
}

// ReadOption reads the presence byte and, if present, runs read to decode
// the value.
func (d *Decoder) ReadOption(read func() error) (bool, error) {
	present, err := d.ReadBool()
	if err != nil {
		return false, err
	}
	if present {
		if err := read(); err != nil {
			return false, err
		}
	}
	return present, nil
}
