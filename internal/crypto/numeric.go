package crypto

import (
	"encoding/binary"
	"math"
)

// floatScale is 10^4, the fixed-point scale of the float codecs for both
// widths.
const floatScale = 10000

// XORInt32 XORs the little-endian bytes of v with key. Self-inverse.
func XORInt32(v int32, key []byte) int32 {
	return int32(XORUint32(uint32(v), key))
}

// XORInt64 XORs the little-endian bytes of v with key. Self-inverse.
func XORInt64(v int64, key []byte) int64 {
	return int64(XORUint64(uint64(v), key))
}

// XORUint32 XORs the little-endian bytes of v with key. Self-inverse.
func XORUint32(v uint32, key []byte) uint32 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	XORCyclicInPlace(b[:], key)
	return binary.LittleEndian.Uint32(b[:])
}

// XORUint64 XORs the little-endian bytes of v with key. Self-inverse.
func XORUint64(v uint64, key []byte) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	XORCyclicInPlace(b[:], key)
	return binary.LittleEndian.Uint64(b[:])
}

// ConvertInt32 is XORInt32 that keeps zero, the value of unset fields.
func ConvertInt32(v int32, key []byte) int32 {
	if v == 0 {
		return 0
	}
	return XORInt32(v, key)
}

// ConvertInt64 is XORInt64 that keeps zero.
func ConvertInt64(v int64, key []byte) int64 {
	if v == 0 {
		return 0
	}
	return XORInt64(v, key)
}

// ConvertUint32 is XORUint32 that keeps zero.
func ConvertUint32(v uint32, key []byte) uint32 {
	if v == 0 {
		return 0
	}
	return XORUint32(v, key)
}

// ConvertUint64 is XORUint64 that keeps zero.
func ConvertUint64(v uint64, key []byte) uint64 {
	if v == 0 {
		return 0
	}
	return XORUint64(v, key)
}

// ConvertEnum converts an int32-backed enum field.
func ConvertEnum[T ~int32](v T, key []byte) T {
	return T(ConvertInt32(int32(v), key))
}

// EncryptFloat32 stores v as round(v * 10^4) * Modulus(key).
// Zero and a modulus of ±1 pass through.
func EncryptFloat32(v float32, key []byte) float32 {
	m := Modulus(key)
	if v == 0 || m == 1 || m == -1 {
		return v
	}
	return float32(math.Round(float64(v)*floatScale) * float64(m))
}

// EncryptFloat64 is EncryptFloat32 for doubles.
func EncryptFloat64(v float64, key []byte) float64 {
	m := Modulus(key)
	if v == 0 || m == 1 || m == -1 {
		return v
	}
	return math.Round(v*floatScale) * float64(m)
}

// ConvertFloat32 decrypts a stored float: v / (Modulus(key) * 10^4).
// Zero and a modulus of ±1 pass through.
func ConvertFloat32(v float32, key []byte) float32 {
	m := Modulus(key)
	if v == 0 || m == 1 || m == -1 {
		return v
	}
	return v / (float32(m) * floatScale)
}

// ConvertFloat64 is ConvertFloat32 for doubles.
func ConvertFloat64(v float64, key []byte) float64 {
	m := Modulus(key)
	if v == 0 || m == 1 || m == -1 {
		return v
	}
	return v / (float64(m) * floatScale)
}
