package crc

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/bacy/internal/gf2"
)

func TestReverseBits32(t *testing.T) {
	tests := []struct {
		in, want uint32
	}{
		{0x00000000, 0x00000000},
		{0x00000001, 0x80000000},
		{0x80000000, 0x00000001},
		{0x0000000F, 0xF0000000},
		{0x12345678, 0x1E6A2C48},
		{0xFFFFFFFF, 0xFFFFFFFF},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ReverseBits32(tt.in), "ReverseBits32(%#08x)", tt.in)
		assert.Equal(t, tt.in, ReverseBits32(tt.want), "ReverseBits32 must be an involution")
	}
}

func TestReverseBytes32(t *testing.T) {
	assert.Equal(t, uint32(0x78563412), ReverseBytes32(0x12345678))
	assert.Equal(t, uint32(0x000000FF), ReverseBytes32(0xFF000000))
}

func TestReverseBitsInBytes(t *testing.T) {
	assert.Equal(t, uint32(0x80402010), ReverseBitsInBytes(0x01020408))
	assert.Equal(t, uint32(0x0B5D9D8D), ReverseBitsInBytes(0xD0BAB9B1))

	// Exhaustive over a single byte lane.
	for b := range uint32(256) {
		var want uint32
		for i := range 8 {
			if b&(1<<i) != 0 {
				want |= 1 << (7 - i)
			}
		}
		require.Equal(t, want<<16, ReverseBitsInBytes(b<<16), "byte %#02x", b)
	}
}

func TestSolvers_Agree(t *testing.T) {
	fast := FastSolver{}
	generic := NewGenericSolver()
	rng := rand.New(rand.NewPCG(1, 2))

	for range 200 {
		padded, target := rng.Uint32(), rng.Uint32()
		a, err := fast.Solve(padded, target)
		require.NoError(t, err)
		b, err := generic.Solve(padded, target)
		require.NoError(t, err)
		require.Equal(t, a, b, "padded=%#08x target=%#08x", padded, target)
	}
}

func TestGenericSolver_ZeroFieldDefaultsToCRC32(t *testing.T) {
	a, err := GenericSolver{}.Solve(0x11111111, 0x22222222)
	require.NoError(t, err)
	b, err := FastSolver{}.Solve(0x11111111, 0x22222222)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestGenericSolver_NoInverse(t *testing.T) {
	// x^32 is not invertible modulo x^32 + x, they share the factor x.
	s := GenericSolver{Field: gf2.Field{Generator: 1<<32 | 0b10, Degree: 32}}
	_, err := s.Solve(0, 1)
	assert.ErrorIs(t, err, gf2.ErrNoInverse)
}

func TestGenericSolver_RejectsOtherDegrees(t *testing.T) {
	fields := []gf2.Field{
		{Generator: 0b110, Degree: 2},
		{Generator: 0x11021, Degree: 16},
		{Generator: 0x11021, Degree: 32}, // generator degree disagrees
	}
	for _, f := range fields {
		_, err := GenericSolver{Field: f}.Solve(0x11111111, 0x22222222)
		assert.ErrorIs(t, err, ErrUnsupportedDegree, "field %+v", f)
	}
}
