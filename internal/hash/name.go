package hash

import (
	"path/filepath"
	"strconv"
	"strings"
)

// EncryptName returns the CDN name of an asset: the big-endian xxHash64 of
// the lowercased file name followed by "_" and the CRC.
func EncryptName(fileName string, crc int64) string {
	h := XXHash64([]byte(strings.ToLower(fileName)), true)
	return strconv.FormatUint(h, 10) + "_" + strconv.FormatInt(crc, 10)
}

// AssetPath maps a local asset path to its on-disk name inside the same
// directory.
//
//   - hasCRC: "<hash>_<crc>"
//   - noHash without CRC: the original file name
//   - otherwise: "<hash>"
//
// toLower lowercases the file name before hashing. An empty file name
// yields an empty path.
func AssetPath(path string, crc int64, hasCRC, noHash, toLower bool) string {
	dir, file := filepath.Split(path)
	if file == "" {
		return ""
	}

	input := file
	if toLower {
		input = strings.ToLower(file)
	}
	h := strconv.FormatUint(XXHash64([]byte(input), true), 10)

	var name string
	switch {
	case hasCRC:
		name = h + "_" + strconv.FormatInt(crc, 10)
	case noHash:
		name = file
	default:
		name = h
	}
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}
