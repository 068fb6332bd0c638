// Package memorypack reads and writes the compact little-endian layout the
// client uses for its catalogs: an object starts with a member-count byte,
// collections and strings with an int32 length.
package memorypack

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

const (
	// NullObject is the member-count byte of a nil object.
	NullObject = 0xFF
	// NullLength is the length of a nil string or collection.
	NullLength = -1
)

// Reader decodes fields sequentially. Input is trusted; errors only report
// truncation and malformed lengths.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) need(op string, n int) error {
	if n < 0 || r.pos+n > len(r.data) {
		return fmt.Errorf("%s: not enough data (pos=%d, need=%d, len=%d)", op, r.pos, n, len(r.data))
	}
	return nil
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.need("ReadByte", 1); err != nil {
		return 0, err
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadBool reads a byte and reports whether it equals 1.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// ReadInt16 reads an int16 (2 bytes, LE).
func (r *Reader) ReadInt16() (int16, error) {
	if err := r.need("ReadInt16", 2); err != nil {
		return 0, err
	}
	v := int16(binary.LittleEndian.Uint16(r.data[r.pos:]))
	r.pos += 2
	return v, nil
}

// ReadInt32 reads an int32 (4 bytes, LE).
func (r *Reader) ReadInt32() (int32, error) {
	if err := r.need("ReadInt32", 4); err != nil {
		return 0, err
	}
	v := int32(binary.LittleEndian.Uint32(r.data[r.pos:]))
	r.pos += 4
	return v, nil
}

// ReadInt64 reads an int64 (8 bytes, LE).
func (r *Reader) ReadInt64() (int64, error) {
	if err := r.need("ReadInt64", 8); err != nil {
		return 0, err
	}
	v := int64(binary.LittleEndian.Uint64(r.data[r.pos:]))
	r.pos += 8
	return v, nil
}

// ReadFloat32 reads a float32 (4 bytes, LE).
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadInt32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(v)), nil
}

// ReadFloat64 reads a float64 (8 bytes, LE).
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadInt64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(v)), nil
}

// ReadString reads a length-prefixed UTF-8 string.
//
// A non-negative length is the UTF-8 byte count. A length below -1 is the
// complemented byte count followed by an int32 UTF-16 length, which is
// skipped. NullLength decodes as "".
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return "", err
	}
	switch {
	case n == NullLength:
		return "", nil
	case n < NullLength:
		n = ^n
		if _, err := r.ReadInt32(); err != nil {
			return "", fmt.Errorf("ReadString: utf16 length: %w", err)
		}
	}

	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", fmt.Errorf("ReadString: %w", err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("ReadString: invalid utf-8 at pos %d", r.pos-len(b))
	}
	return string(b), nil
}

// ReadObjectHeader reads the member count of an object. ok is false for a
// nil object.
func (r *Reader) ReadObjectHeader() (members int, ok bool, err error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, false, err
	}
	if b == NullObject {
		return 0, false, nil
	}
	return int(b), true, nil
}

// ReadCollectionHeader reads the element count of a collection. ok is false
// for a nil collection.
func (r *Reader) ReadCollectionHeader() (count int, ok bool, err error) {
	n, err := r.ReadInt32()
	if err != nil {
		return 0, false, err
	}
	if n == NullLength {
		return 0, false, nil
	}
	if n < 0 {
		return 0, false, fmt.Errorf("ReadCollectionHeader: invalid length %d", n)
	}
	return int(n), true, nil
}

// ReadStrings reads a collection of strings. A nil collection yields nil.
func (r *Reader) ReadStrings() ([]string, error) {
	n, ok, err := r.ReadCollectionHeader()
	if err != nil || !ok {
		return nil, err
	}
	out := make([]string, 0, n)
	for range n {
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// ReadBytes reads n bytes. The returned slice shares memory with the input
// and must not be modified.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need("ReadBytes", n); err != nil {
		return nil, err
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Position returns the current read position.
func (r *Reader) Position() int {
	return r.pos
}
