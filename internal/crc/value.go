// Package crc computes CRC-32 (IEEE) checksums and forges 4-byte patches
// that steer a buffer or file to an arbitrary checksum.
package crc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMismatch reports a checksum that differs from the expected one.
var ErrMismatch = errors.New("crc mismatch")

// Value is a CRC-32 checksum. Its text form is always derived from the
// number: 8 uppercase zero-padded hex digits.
type Value uint32

// Hex returns the canonical 8-digit uppercase form.
func (v Value) Hex() string {
	return fmt.Sprintf("%08X", uint32(v))
}

func (v Value) String() string {
	return v.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(b []byte) error {
	parsed, err := ParseValue(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseValue parses a hex checksum with an optional 0x prefix.
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" || len(s) > 8 {
		return 0, fmt.Errorf("parsing crc %q: want 1-8 hex digits", s)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing crc %q: %w", s, err)
	}
	return Value(n), nil
}

// MismatchError carries both sides of a failed checksum comparison.
type MismatchError struct {
	Expected Value
	Actual   Value
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("crc mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// Unwrap lets errors.Is match ErrMismatch.
func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}
