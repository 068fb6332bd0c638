// Package hash wraps the digests used by the asset pipeline: xxHash for
// table keys and asset names, MD5 for manifests and CRC-32 for integrity.
package hash

import (
	"math/bits"

	"github.com/OneOfOne/xxhash"
)

// XXHash32 returns the 32-bit xxHash (seed 0) of b.
func XXHash32(b []byte) uint32 {
	return xxhash.Checksum32(b)
}

// XXHash64 returns the 64-bit xxHash (seed 0) of b.
// With bigEndian set the digest is byte-swapped, which is how the client
// renders asset names.
func XXHash64(b []byte, bigEndian bool) uint64 {
	h := xxhash.Checksum64(b)
	if bigEndian {
		return bits.ReverseBytes64(h)
	}
	return h
}
