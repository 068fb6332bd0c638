package crypto

// LegacyXORKey is the key whose low byte XORRangedDefault applies.
const LegacyXORKey uint32 = 2948064217

const legacyXORByte = byte(LegacyXORKey & 0xFF)

// XORExact XORs a and b pairwise over the shorter of the two lengths.
func XORExact(a, b []byte) []byte {
	n := min(len(a), len(b))
	out := make([]byte, n)
	for i := range n {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// XORCyclic returns data XORed with key repeated to data's length.
// An empty key leaves the data unchanged.
func XORCyclic(data, key []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	XORCyclicInPlace(out, key)
	return out
}

// XORCyclicInPlace is XORCyclic without allocating.
func XORCyclicInPlace(data, key []byte) {
	if len(key) == 0 {
		return
	}
	for i := range data {
		data[i] ^= key[i%len(key)]
	}
}

// XORRanged XORs data[offset:offset+length] with keyByte in place, clamped
// to the end of data. Out-of-range offsets and zero lengths are no-ops.
func XORRanged(data []byte, offset, length int, keyByte byte) {
	if offset < 0 || offset >= len(data) || length <= 0 {
		return
	}
	end := min(offset+length, len(data))
	for i := offset; i < end; i++ {
		data[i] ^= keyByte
	}
}

// XORRangedDefault is XORRanged with the low byte of LegacyXORKey.
func XORRangedDefault(data []byte, offset, length int) {
	XORRanged(data, offset, length, legacyXORByte)
}

// XORWithKeyChecked is XORCyclic that reports ok=false instead of a result
// when either input is empty.
func XORWithKeyChecked(data, key []byte) (out []byte, ok bool) {
	if len(data) == 0 || len(key) == 0 {
		return nil, false
	}
	return XORCyclic(data, key), true
}
