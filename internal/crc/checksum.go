package crc

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// DefaultBufferSize is the read size used when streaming files.
const DefaultBufferSize = 0x2000

const minBufferSize = 4096

var zeroPad = []byte{0, 0, 0, 0}

// Checksum returns the CRC-32 of buf.
func Checksum(buf []byte) Value {
	return Value(crc32.ChecksumIEEE(buf))
}

// ChecksumWithSuffix returns the CRC-32 of buf followed by suffix without
// copying either.
func ChecksumWithSuffix(buf, suffix []byte) Value {
	return Value(crc32.Update(crc32.ChecksumIEEE(buf), crc32.IEEETable, suffix))
}

// Extend continues a finished checksum over more bytes.
func Extend(v Value, more []byte) Value {
	return Value(crc32.Update(uint32(v), crc32.IEEETable, more))
}

// Stream reads r to EOF and returns its checksum.
func Stream(r io.Reader, bufSize int) (Value, error) {
	bufSize = max(bufSize, minBufferSize)
	h := crc32.NewIEEE()
	if _, err := io.CopyBuffer(h, r, make([]byte, bufSize)); err != nil {
		return 0, err
	}
	return Value(h.Sum32()), nil
}

// ChecksumFile streams path and returns the checksum of its contents
// followed by suffix (which may be nil).
func ChecksumFile(path string, bufSize int, suffix []byte) (Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	v, err := Stream(f, bufSize)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return Extend(v, suffix), nil
}

// Compare streams path and returns a *MismatchError when its checksum is
// not expected.
func Compare(path string, expected Value) error {
	actual, err := ChecksumFile(path, DefaultBufferSize, nil)
	if err != nil {
		return err
	}
	if actual != expected {
		return &MismatchError{Expected: expected, Actual: actual}
	}
	return nil
}
