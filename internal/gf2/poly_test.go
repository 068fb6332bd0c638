package gf2

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoly_Degree(t *testing.T) {
	assert.Equal(t, -1, Poly(0).Degree())
	assert.Equal(t, 0, Poly(1).Degree())
	assert.Equal(t, 32, CRC32.Generator.Degree())
}

func TestMul(t *testing.T) {
	// (x+1)(x+1) = x^2 + 1 over GF(2)
	assert.Equal(t, Poly(0b101), Mul(0b11, 0b11))
	// (x^2+x+1)(x+1) = x^3 + 1
	assert.Equal(t, Poly(0b1001), Mul(0b111, 0b11))
	assert.Equal(t, Poly(0), Mul(0, 0xFFFF))
}

func TestDivMod(t *testing.T) {
	tests := []struct {
		a, b, q, r Poly
	}{
		{0b1001, 0b11, 0b111, 0},   // x^3+1 = (x+1)(x^2+x+1)
		{0b1011, 0b11, 0b110, 0b1}, // x^3+x+1 = (x+1)(x^2+x) + 1
		{0b10, 0b100, 0, 0b10},     // lower degree dividend
		{0x1F, 0, 0, 0x1F},         // division by zero keeps the dividend
	}
	for _, tt := range tests {
		q, r := DivMod(tt.a, tt.b)
		assert.Equal(t, tt.q, q, "quotient of %b / %b", tt.a, tt.b)
		assert.Equal(t, tt.r, r, "remainder of %b / %b", tt.a, tt.b)
		if tt.b != 0 {
			assert.Equal(t, tt.a, Mul(q, tt.b)^r)
		}
	}
}

func TestCRC32_InverseXN(t *testing.T) {
	inv, err := CRC32.InverseXN()
	require.NoError(t, err)
	assert.Equal(t, Poly(0xCBF1ACDA), inv)
	assert.Equal(t, Poly(1), CRC32.MulMod(1<<32, inv))
}

func TestInverse_RoundTrip(t *testing.T) {
	for _, a := range []Poly{1, 2, 3, 0xDEADBEEF, 0x12345678, 0xFFFFFFFF} {
		inv, err := CRC32.Inverse(a)
		require.NoError(t, err, "inverse of %#x", a)
		assert.Equal(t, Poly(1), CRC32.MulMod(a, inv), "a * a^-1 for %#x", a)
	}
}

func TestInverse_OtherField(t *testing.T) {
	// CRC-16/CCITT generator x^16 + x^12 + x^5 + 1.
	f := Field{Generator: 0x11021, Degree: 16}
	inv, err := f.InverseXN()
	require.NoError(t, err)
	assert.Equal(t, Poly(1), f.MulMod(1<<16, inv))
	assert.Less(t, inv.Degree(), 16)
}

func TestInverse_Errors(t *testing.T) {
	_, err := Inverse(0, CRC32.Generator)
	assert.True(t, errors.Is(err, ErrZero))

	// x+1 divides x^2+1, so they share a factor.
	_, err = Inverse(0b11, 0b101)
	assert.True(t, errors.Is(err, ErrNoInverse))
}

func TestField_Reduce(t *testing.T) {
	assert.Equal(t, Poly(CRC32.Generator^1<<32), CRC32.Reduce(1<<32))
	assert.Equal(t, Poly(0), CRC32.Reduce(CRC32.Generator))
}
