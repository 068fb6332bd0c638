package crc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Hex(t *testing.T) {
	assert.Equal(t, "00000000", Value(0).Hex())
	assert.Equal(t, "0D4A1185", Value(0x0D4A1185).Hex())
	assert.Equal(t, "DEADBEEF", Value(0xDEADBEEF).String())
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in      string
		want    Value
		wantErr bool
	}{
		{"DEADBEEF", 0xDEADBEEF, false},
		{"0xdeadbeef", 0xDEADBEEF, false},
		{" 1a ", 0x1A, false},
		{"", 0, true},
		{"123456789", 0, true},
		{"zz", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseValue(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.Hex()), "hex form must round-trip")
		})
	}
}

func TestValue_Text(t *testing.T) {
	b, err := Value(0xAB).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "000000AB", string(b))

	var v Value
	require.NoError(t, v.UnmarshalText([]byte("CAFEBABE")))
	assert.Equal(t, Value(0xCAFEBABE), v)
}

func TestMismatchError(t *testing.T) {
	var err error = &MismatchError{Expected: 1, Actual: 2}
	assert.True(t, errors.Is(err, ErrMismatch))
	assert.Equal(t, "crc mismatch: expected 00000001, got 00000002", err.Error())
}

func mustParse(t *testing.T, s string) Value {
	t.Helper()
	v, err := ParseValue(s)
	require.NoError(t, err)
	return v
}
