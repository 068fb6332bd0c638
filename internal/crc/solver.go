package crc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"

	"github.com/udisondev/bacy/internal/gf2"
)

// InverseX32 is x^-32 modulo the CRC-32 generator polynomial.
const InverseX32 = 0xCBF1ACDA

const (
	generator = 0x104C11DB7
	degree    = 32
)

// Solver computes the 4-byte patch that moves a CRC state to a target.
// paddedCRC is the checksum of the buffer followed by four zero bytes.
type Solver interface {
	Solve(paddedCRC, target uint32) ([4]byte, error)
}

// FastSolver multiplies by the precomputed InverseX32. It never fails.
type FastSolver struct{}

// Solve implements Solver.
func (FastSolver) Solve(paddedCRC, target uint32) ([4]byte, error) {
	k := ReverseBits32(target ^ paddedCRC)
	return patchBytes(uint32(mulMod(uint64(k), InverseX32))), nil
}

// mulMod is carry-less a*b with the reduction interleaved: the
// accumulator doubles each step and is reduced as soon as it reaches x^32.
func mulMod(a, b uint64) uint64 {
	var result uint64
	for b != 0 {
		if b&1 != 0 {
			result ^= a
		}
		b >>= 1
		a <<= 1
		if a>>degree != 0 {
			a ^= generator
		}
	}
	return result
}

// ErrUnsupportedDegree is returned by GenericSolver for fields whose patch
// does not fit the 4-byte Solver contract.
var ErrUnsupportedDegree = errors.New("crc: solver field must have degree 32")

// GenericSolver solves the patch through the extended Euclidean inverse of
// x^Degree. Any degree-32 generator works; for gf2.CRC32 it yields the same
// patch as FastSolver.
type GenericSolver struct {
	Field gf2.Field
}

// NewGenericSolver returns a GenericSolver over the CRC-32 field.
func NewGenericSolver() GenericSolver {
	return GenericSolver{Field: gf2.CRC32}
}

// Solve implements Solver.
func (s GenericSolver) Solve(paddedCRC, target uint32) ([4]byte, error) {
	field := s.Field
	if field.Generator == 0 {
		field = gf2.CRC32
	}
	if field.Degree != degree || field.Generator.Degree() != degree {
		return [4]byte{}, fmt.Errorf("%w: got %d", ErrUnsupportedDegree, field.Degree)
	}
	inv, err := field.InverseXN()
	if err != nil {
		return [4]byte{}, fmt.Errorf("inverting x^%d: %w", field.Degree, err)
	}
	k := gf2.Poly(ReverseBits32(target ^ paddedCRC))
	return patchBytes(uint32(field.MulMod(k, inv))), nil
}

// patchBytes lays p out big-endian and reverses the bits of every byte,
// mapping the polynomial back into the reflected CRC bit order.
func patchBytes(p uint32) [4]byte {
	var out [4]byte
	binary.BigEndian.PutUint32(out[:], ReverseBitsInBytes(p))
	return out
}

// ReverseBits32 reverses all 32 bits of v. Applied to the big-endian bytes
// of v this is the same as reversing the byte order and then the bits of
// each byte.
func ReverseBits32(v uint32) uint32 {
	return bits.Reverse32(v)
}

// ReverseBytes32 swaps the byte order of v.
func ReverseBytes32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// ReverseBitsInBytes reverses the bit order inside each byte of v while
// keeping the bytes in place.
func ReverseBitsInBytes(v uint32) uint32 {
	return bits.ReverseBytes32(bits.Reverse32(v))
}
