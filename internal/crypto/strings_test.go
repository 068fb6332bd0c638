package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptString_KnownVector(t *testing.T) {
	key := CreateKeyString("table_name")
	enc := EncryptString("Hello, world!", key)
	assert.Equal(t, "MB2bHF3quyUXHdIcEeqgJRcdjBxd6rMlWR0=", enc)

	dec, err := ConvertString(enc, key)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", dec)
}

func TestString_RoundTrip(t *testing.T) {
	key := CreateKeyString("ItemExcelTable")
	for _, s := range []string{
		"Longer than eight",
		"Привет, таблица",
		"アイテムの説明文です",
		"emoji 😀 in a table",
		"tab\tand\nnewline",
	} {
		enc := EncryptString(s, key)
		dec, err := ConvertString(enc, key)
		require.NoError(t, err)
		assert.Equal(t, s, dec)

		gated := EncryptStringGated(s, key)
		assert.Equal(t, enc, gated, "strings of 8+ code units are not gated")
	}
}

func TestString_Empty(t *testing.T) {
	key := CreateKeyString("t")
	assert.Equal(t, "", EncryptString("", key))
	assert.Equal(t, "", EncryptStringGated("", key))

	dec, err := ConvertString("", key)
	require.NoError(t, err)
	assert.Equal(t, "", dec)
}

func TestEncryptStringGated_Short(t *testing.T) {
	key := CreateKeyString("t")
	for _, s := range []string{"a", "short", "7 chars", "日本語テ"} {
		assert.Equal(t, s, EncryptStringGated(s, key))
	}
	// Eight code units are encoded.
	assert.NotEqual(t, "8 chars!", EncryptStringGated("8 chars!", key))
}

func TestConvertString_Latin1Fallback(t *testing.T) {
	key := CreateKeyString("t")

	// Odd byte count: "abc".
	dec, err := ConvertString("rCPn", key)
	require.NoError(t, err)
	assert.Equal(t, "abc", dec)

	// Single byte 0xE9.
	dec, err = ConvertString("JA==", key)
	require.NoError(t, err)
	assert.Equal(t, "é", dec)

	// Unpaired high surrogate 0xD800 followed by 'A'.
	dec, err = ConvertString("zZnFYA==", key)
	require.NoError(t, err)
	assert.Equal(t, "\x00ØA\x00", dec)
}

func TestConvertString_InvalidBase64(t *testing.T) {
	_, err := ConvertString("not base64!", CreateKeyString("t"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestValidUTF16LE(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want bool
	}{
		{"ascii", []byte{'a', 0, 'b', 0}, true},
		{"pair", []byte{0x3D, 0xD8, 0x00, 0xDE}, true},
		{"odd", []byte{'a'}, false},
		{"lone low", []byte{0x00, 0xDC}, false},
		{"high at end", []byte{'a', 0, 0x00, 0xD8}, false},
		{"high then ascii", []byte{0x00, 0xD8, 'a', 0}, false},
		{"empty", nil, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, validUTF16LE(tt.in), tt.name)
	}
}
