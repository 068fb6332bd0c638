package crc

import (
	"fmt"
	"os"
)

// ManipulateCRC makes modified checksum-identical to original using the
// general GF(2) solver. The modified file is only rewritten when the
// patched checksum matches; the return value reports whether it did.
func ManipulateCRC(original, modified string) (bool, error) {
	originalData, err := os.ReadFile(original)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", original, err)
	}
	modifiedData, err := os.ReadFile(modified)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", modified, err)
	}

	target := Checksum(originalData)
	padded := ChecksumWithSuffix(modifiedData, zeroPad)
	patch, err := NewGenericSolver().Solve(uint32(padded), uint32(target))
	if err != nil {
		return false, err
	}

	final := append(modifiedData, patch[:]...)
	if Checksum(final) != target {
		return false, nil
	}
	info, err := os.Stat(modified)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", modified, err)
	}
	if err := os.WriteFile(modified, final, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("writing %s: %w", modified, err)
	}
	return true, nil
}
