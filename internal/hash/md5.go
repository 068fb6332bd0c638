package hash

import (
	"crypto/hmac"
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// MD5 returns the MD5 digest of b.
func MD5(b []byte) [md5.Size]byte {
	return md5.Sum(b)
}

// HMACMD5 returns HMAC-MD5(key, b).
func HMACMD5(b, key []byte) [md5.Size]byte {
	mac := hmac.New(md5.New, key)
	mac.Write(b)
	var out [md5.Size]byte
	copy(out[:], mac.Sum(nil))
	return out
}

// MD5Hex returns the lowercase hex MD5 of s.
func MD5Hex(s string) string {
	sum := MD5([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HMACMD5Hex returns the lowercase hex HMAC-MD5 of s keyed by key.
func HMACMD5Hex(s, key string) string {
	sum := HMACMD5([]byte(s), []byte(key))
	return hex.EncodeToString(sum[:])
}

// Digest32 folds the first four bytes of MD5(s) into a little-endian uint32.
func Digest32(s string) uint32 {
	sum := MD5([]byte(s))
	return binary.LittleEndian.Uint32(sum[:4])
}

// Digest32HMAC is Digest32 over HMAC-MD5.
func Digest32HMAC(s, key string) uint32 {
	sum := HMACMD5([]byte(s), []byte(key))
	return binary.LittleEndian.Uint32(sum[:4])
}

// Digest64 folds the first eight bytes of MD5(s) into a little-endian uint64.
func Digest64(s string) uint64 {
	sum := MD5([]byte(s))
	return binary.LittleEndian.Uint64(sum[:8])
}

// Digest64HMAC is Digest64 over HMAC-MD5.
func Digest64HMAC(s, key string) uint64 {
	sum := HMACMD5([]byte(s), []byte(key))
	return binary.LittleEndian.Uint64(sum[:8])
}

// Head returns the first MD5 byte of s as two hex digits. The CDN shards
// assets into directories named this way.
func Head(s string) string {
	sum := MD5([]byte(s))
	return hex.EncodeToString(sum[:1])
}

// MD5File streams path through MD5 and returns the lowercase hex digest.
func MD5File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
