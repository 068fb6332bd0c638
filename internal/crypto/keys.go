// Package crypto implements the table cipher used by the game client: an
// MT19937 keystream seeded from xxHash32 of a table name, applied through
// per-type codecs. It is an obfuscation scheme, not a secure cipher.
package crypto

import (
	"encoding/base64"

	"github.com/udisondev/bacy/internal/hash"
	"github.com/udisondev/bacy/internal/mt"
)

// KeySize is the length of a table key.
const KeySize = 8

// Seed returns the keystream seed for b: its 32-bit xxHash with seed 0.
func Seed(b []byte) uint32 {
	return hash.XXHash32(b)
}

// Keystream returns n bytes of the keystream for seed.
func Keystream(seed uint32, n int) []byte {
	buf := make([]byte, n)
	mt.New(seed).NextBytes(buf)
	return buf
}

// CreateKey derives the 8-byte table key for b.
func CreateKey(b []byte) []byte {
	return Keystream(Seed(b), KeySize)
}

// CreateKeyString is CreateKey over the UTF-8 bytes of name.
func CreateKeyString(name string) []byte {
	return CreateKey([]byte(name))
}

// CreatePassword derives a base64 password of length characters from seed.
// It draws length*3/4 keystream bytes, so length should be a multiple of 4.
func CreatePassword(seed string, length int) string {
	if length <= 0 {
		return ""
	}
	raw := Keystream(Seed([]byte(seed)), length*3/4)
	return base64.StdEncoding.EncodeToString(raw)
}

// EncodeRow XORs raw with the keystream derived from name. Applying it
// twice with the same name restores the input.
func EncodeRow(name string, raw []byte) []byte {
	out := Keystream(Seed([]byte(name)), len(raw))
	for i := range out {
		out[i] ^= raw[i]
	}
	return out
}

// Modulus is the float codec scale factor derived from key[0]:
// key[0] mod 10, with 0 and 1 mapped to 7, negated for odd key[0].
// An empty key yields 1, which disables the float codecs.
func Modulus(key []byte) int32 {
	if len(key) == 0 {
		return 1
	}
	m := int32(key[0] % 10)
	if m <= 1 {
		m = 7
	}
	if key[0]&1 != 0 {
		m = -m
	}
	return m
}
