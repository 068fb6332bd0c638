// Package mt implements the MT19937 Mersenne Twister used by the game client
// to derive table keys and archive passwords.
//
// The output must match the reference generator bit for bit: keys derived
// here are compared against values produced by the shipped client.
package mt

import (
	"encoding/binary"
	"math"
)

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// Twister is a seeded MT19937 generator. Not safe for concurrent use.
type Twister struct {
	state [n]uint32
	index int
}

// New creates a generator seeded with init_genrand(seed).
func New(seed uint32) *Twister {
	t := &Twister{}
	t.Seed(seed)
	return t
}

// Seed resets the generator state.
func (t *Twister) Seed(seed uint32) {
	t.state[0] = seed
	for i := 1; i < n; i++ {
		prev := t.state[i-1]
		t.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	t.index = n
}

func (t *Twister) generate() {
	for i := range n {
		y := (t.state[i] & upperMask) | (t.state[(i+1)%n] & lowerMask)
		next := t.state[(i+m)%n] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		t.state[i] = next
	}
	t.index = 0
}

// Uint32 returns the next raw 32-bit word.
func (t *Twister) Uint32() uint32 {
	if t.index >= n {
		t.generate()
	}
	y := t.state[t.index]
	t.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Int31 returns Uint32() >> 1, the legacy non-negative convention.
func (t *Twister) Int31() uint32 {
	return t.Uint32() >> 1
}

// Uint64 combines two words, the first one being the high half.
func (t *Twister) Uint64() uint64 {
	high := uint64(t.Uint32())
	low := uint64(t.Uint32())
	return high<<32 | low
}

// NextBytes fills buf from successive Int31 words in little-endian order.
// A trailing partial chunk takes the low-order bytes of one more word.
func (t *Twister) NextBytes(buf []byte) {
	i := 0
	for ; i+4 <= len(buf); i += 4 {
		binary.LittleEndian.PutUint32(buf[i:], t.Int31())
	}
	if i < len(buf) {
		var word [4]byte
		binary.LittleEndian.PutUint32(word[:], t.Int31())
		copy(buf[i:], word[:len(buf)-i])
	}
}

// Read implements io.Reader; it never fails.
func (t *Twister) Read(p []byte) (int, error) {
	t.NextBytes(p)
	return len(p), nil
}

// Float32 returns a value in [0, 1) built from one word.
func (t *Twister) Float32() float32 {
	return float32(t.Uint32()) * (1.0 / 4294967296.0)
}

// Float64 returns a 53-bit precision value in [0, 1) built from two words.
func (t *Twister) Float64() float64 {
	a := float64(t.Uint32() >> 5)
	b := float64(t.Uint32() >> 6)
	return (a*67108864.0 + b) * (1.0 / 9007199254740992.0)
}

// Range returns floor((hi-lo)*Float64() + lo), a value in [lo, hi).
// Bounds are swapped when lo > hi.
func (t *Twister) Range(lo, hi int32) int32 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return int32(math.Floor((float64(hi)-float64(lo))*t.Float64() + float64(lo)))
}

