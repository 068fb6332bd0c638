package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidEncoding is returned when an encrypted string is not base64.
var ErrInvalidEncoding = errors.New("invalid encoding")

// GateLength is the number of UTF-16 code units below which
// EncryptStringGated leaves strings untouched.
const GateLength = 8

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

func encodeUTF16(s string) []byte {
	b, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// Only reachable for invalid UTF-8; fall back to rune-wise encoding.
		units := utf16.Encode([]rune(s))
		b = make([]byte, 0, len(units)*2)
		for _, u := range units {
			b = append(b, byte(u), byte(u>>8))
		}
	}
	return b
}

// EncryptString packs s as UTF-16LE, XORs it with key and returns standard
// base64. The empty string stays empty.
func EncryptString(s string, key []byte) string {
	if s == "" {
		return ""
	}
	raw := encodeUTF16(s)
	XORCyclicInPlace(raw, key)
	return base64.StdEncoding.EncodeToString(raw)
}

// EncryptStringGated is EncryptString that leaves strings shorter than
// GateLength UTF-16 code units unchanged.
func EncryptStringGated(s string, key []byte) string {
	raw := encodeUTF16(s)
	if len(raw)/2 < GateLength {
		return s
	}
	XORCyclicInPlace(raw, key)
	return base64.StdEncoding.EncodeToString(raw)
}

// ConvertString reverses EncryptString. When the decrypted bytes are not
// valid UTF-16LE (odd length or unpaired surrogates) each byte is read as
// one Latin-1 character instead.
func ConvertString(s string, key []byte) (string, error) {
	if s == "" {
		return "", nil
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	XORCyclicInPlace(raw, key)

	if validUTF16LE(raw) {
		out, err := utf16le.NewDecoder().Bytes(raw)
		if err == nil {
			return string(out), nil
		}
	}
	return latin1(raw), nil
}

func validUTF16LE(b []byte) bool {
	if len(b)%2 != 0 {
		return false
	}
	for i := 0; i < len(b); i += 2 {
		u := rune(b[i]) | rune(b[i+1])<<8
		switch {
		case u >= 0xDC00 && u <= 0xDFFF:
			return false
		case u >= 0xD800 && u <= 0xDBFF:
			if i+3 >= len(b) {
				return false
			}
			next := rune(b[i+2]) | rune(b[i+3])<<8
			if next < 0xDC00 || next > 0xDFFF {
				return false
			}
			i += 2
		}
	}
	return true
}

func latin1(b []byte) string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		runes := make([]rune, len(b))
		for i, c := range b {
			runes[i] = rune(c)
		}
		return string(runes)
	}
	return string(out)
}
