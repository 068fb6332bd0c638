package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXORExact(t *testing.T) {
	assert.Equal(t, []byte{0x03, 0x01}, XORExact([]byte{0x01, 0x02, 0x03}, []byte{0x02, 0x03}))
	assert.Equal(t, []byte{}, XORExact(nil, []byte{0x01}))
}

func TestXORCyclic(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x00, 0x00}
	got := XORCyclic(data, []byte{0xAA, 0xBB})
	assert.Equal(t, []byte{0xAA, 0xBB, 0xAA, 0xBB, 0xAA}, got)
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, data, "input must not be modified")

	// Self-inverse.
	assert.Equal(t, data, XORCyclic(got, []byte{0xAA, 0xBB}))
}

func TestXORCyclic_EmptyKeyIsIdentity(t *testing.T) {
	data := []byte("payload")
	assert.Equal(t, data, XORCyclic(data, nil))

	inPlace := bytes.Clone(data)
	XORCyclicInPlace(inPlace, []byte{})
	assert.Equal(t, data, inPlace)
}

func TestXORRanged(t *testing.T) {
	tests := []struct {
		name           string
		offset, length int
		want           []byte
	}{
		{"middle", 1, 2, []byte{0x00, 0xFF, 0xFF, 0x00}},
		{"clamped", 2, 100, []byte{0x00, 0x00, 0xFF, 0xFF}},
		{"offset past end", 4, 1, []byte{0x00, 0x00, 0x00, 0x00}},
		{"zero length", 0, 0, []byte{0x00, 0x00, 0x00, 0x00}},
		{"negative offset", -1, 2, []byte{0x00, 0x00, 0x00, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]byte, 4)
			XORRanged(data, tt.offset, tt.length, 0xFF)
			assert.Equal(t, tt.want, data)
		})
	}
}

func TestXORRangedDefault(t *testing.T) {
	assert.Equal(t, byte(0xD9), legacyXORByte)

	data := []byte{0x00, 0x00, 0x10}
	XORRangedDefault(data, 0, 2)
	assert.Equal(t, []byte{0xD9, 0xD9, 0x10}, data)

	XORRangedDefault(data, 1, 10)
	assert.Equal(t, []byte{0xD9, 0x00, 0xC9}, data)
}

func TestXORWithKeyChecked(t *testing.T) {
	out, ok := XORWithKeyChecked([]byte{0x0F, 0xF0}, []byte{0xFF})
	assert.True(t, ok)
	assert.Equal(t, []byte{0xF0, 0x0F}, out)

	out, ok = XORWithKeyChecked(nil, []byte{0xFF})
	assert.False(t, ok)
	assert.Nil(t, out)

	_, ok = XORWithKeyChecked([]byte{0x01}, nil)
	assert.False(t, ok)
}
