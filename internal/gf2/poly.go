// Package gf2 implements polynomial arithmetic over GF(2).
//
// A polynomial is stored in a uint64 where bit i is the coefficient of x^i.
// Addition is XOR and multiplication is carry-less. Products must fit in
// 64 bits, which holds for every field of degree 32 or less.
package gf2

import (
	"errors"
	"math/bits"
)

var (
	// ErrZero is returned when asked for the inverse of the zero polynomial.
	ErrZero = errors.New("gf2: zero has no inverse")
	// ErrNoInverse is returned when a and the modulus are not coprime.
	ErrNoInverse = errors.New("gf2: modular inverse does not exist")
)

// Poly is a polynomial over GF(2).
type Poly uint64

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	return bits.Len64(uint64(p)) - 1
}

// Add returns a + b.
func Add(a, b Poly) Poly {
	return a ^ b
}

// Mul returns the unreduced carry-less product a * b.
func Mul(a, b Poly) Poly {
	var result Poly
	for b != 0 {
		if b&1 != 0 {
			result ^= a
		}
		a <<= 1
		b >>= 1
	}
	return result
}

// DivMod returns the quotient and remainder of a / b.
// Division by zero yields (0, a).
func DivMod(a, b Poly) (q, r Poly) {
	if b == 0 {
		return 0, a
	}
	db := b.Degree()
	r = a
	for r != 0 {
		shift := r.Degree() - db
		if shift < 0 {
			break
		}
		q |= 1 << shift
		r ^= b << shift
	}
	return q, r
}

// Div returns the quotient of a / b.
func Div(a, b Poly) Poly {
	q, _ := DivMod(a, b)
	return q
}

// Mod returns a mod b.
func Mod(a, b Poly) Poly {
	_, r := DivMod(a, b)
	return r
}

// Inverse returns s such that a*s ≡ 1 (mod m), using the extended
// Euclidean algorithm.
func Inverse(a, m Poly) (Poly, error) {
	if a == 0 {
		return 0, ErrZero
	}

	oldR, r := m, a
	oldS, s := Poly(0), Poly(1)
	for r != 0 {
		q := Div(oldR, r)
		oldR, r = r, oldR^Mul(q, r)
		oldS, s = s, oldS^Mul(q, s)
	}
	if oldR != 1 {
		return 0, ErrNoInverse
	}
	return Mod(oldS, m), nil
}

// Field is GF(2)[x] reduced modulo a generator of the given degree.
type Field struct {
	Generator Poly
	Degree    int
}

// CRC32 is the field generated by the IEEE 802.3 CRC-32 polynomial.
var CRC32 = Field{Generator: 0x104C11DB7, Degree: 32}

func (f Field) mask() Poly {
	if f.Degree >= 64 {
		return ^Poly(0)
	}
	return 1<<f.Degree - 1
}

// Reduce returns p mod the generator, truncated to Degree bits.
func (f Field) Reduce(p Poly) Poly {
	return Mod(p, f.Generator) & f.mask()
}

// MulMod returns a*b reduced in the field.
func (f Field) MulMod(a, b Poly) Poly {
	return f.Reduce(Mul(a, b))
}

// Inverse returns the multiplicative inverse of a in the field.
func (f Field) Inverse(a Poly) (Poly, error) {
	return Inverse(a, f.Generator)
}

// InverseXN returns the inverse of x^Degree, the factor that maps a CRC
// state difference back onto the bytes that produce it.
func (f Field) InverseXN() (Poly, error) {
	return f.Inverse(1 << f.Degree)
}
