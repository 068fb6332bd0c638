package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateKey(t *testing.T) {
	key := CreateKeyString("table_name")
	assert.Equal(t, "781dfe1c31ead725", hex.EncodeToString(key))
	assert.Equal(t, key, CreateKey([]byte("table_name")))
	assert.Equal(t, "cd418460784b1060", hex.EncodeToString(CreateKeyString("t")))
}

func TestCreateKey_Deterministic(t *testing.T) {
	for _, name := range []string{"", "a", "CharacterExcelTable", "日本語"} {
		a := CreateKeyString(name)
		b := CreateKeyString(name)
		require.Len(t, a, KeySize)
		assert.Equal(t, a, b, "key for %q", name)
	}
}

func TestCreatePassword(t *testing.T) {
	pw := CreatePassword("assets/x.bin", 20)
	assert.Equal(t, "tU/sJ2KQBX8voYFzwpS9", pw)
	assert.Len(t, pw, 20)

	raw, err := base64.StdEncoding.DecodeString(pw)
	require.NoError(t, err)
	assert.Len(t, raw, 15)

	assert.Equal(t, "", CreatePassword("x", 0))
	assert.Len(t, CreatePassword("x", 8), 8)
}

func TestEncodeRow(t *testing.T) {
	enc := EncodeRow("Row", []byte("hello"))
	assert.Equal(t, "51666d41f5", hex.EncodeToString(enc))
	assert.Equal(t, []byte("hello"), EncodeRow("Row", enc))

	raw := bytes.Repeat([]byte{0x5A}, 1027)
	assert.Equal(t, raw, EncodeRow("LongRow", EncodeRow("LongRow", raw)))
	assert.Empty(t, EncodeRow("Row", nil))
}

func TestModulus(t *testing.T) {
	tests := []struct {
		key  []byte
		want int32
	}{
		{[]byte{120}, 7},
		{[]byte{0x08}, 8},
		{[]byte{0x03}, -3},
		{[]byte{0x05}, -5},
		{[]byte{0x0B}, -7},
		{[]byte{0x14}, 7},
		{[]byte{201, 0x00}, -7},
		{nil, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Modulus(tt.key), "key %x", tt.key)
	}

	for b := range 256 {
		require.NotZero(t, Modulus([]byte{byte(b)}))
	}
}
