package crc

import (
	"fmt"
	"log/slog"
	"os"
)

// ForgerOption is a functional option for Forger configuration.
type ForgerOption func(*Forger)

// WithSolver replaces the default FastSolver.
func WithSolver(s Solver) ForgerOption {
	return func(f *Forger) {
		f.solver = s
	}
}

// WithBufferSize sets the read size for streamed files.
func WithBufferSize(n int) ForgerOption {
	return func(f *Forger) {
		if n > 0 {
			f.bufSize = n
		}
	}
}

// Forger appends 4-byte patches to buffers and files so that their CRC-32
// equals a chosen target.
//
// Concurrent forges of the same path are not synchronized; callers own that.
type Forger struct {
	solver  Solver
	bufSize int
}

// NewForger creates a Forger using FastSolver unless overridden.
func NewForger(opts ...ForgerOption) *Forger {
	f := &Forger{
		solver:  FastSolver{},
		bufSize: DefaultBufferSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

var defaultForger = NewForger()

// Result describes a forge operation.
type Result struct {
	Before Value
	After  Value
	// Patch is nil when the checksum already matched.
	Patch []byte
}

// Changed reports whether bytes were appended.
func (r Result) Changed() bool {
	return r.Patch != nil
}

// Patch returns the 4 bytes that, appended to buf, give it the checksum
// target.
func (f *Forger) Patch(buf []byte, target Value) ([4]byte, error) {
	padded := ChecksumWithSuffix(buf, zeroPad)
	return f.solver.Solve(uint32(padded), uint32(target))
}

// Forge returns buf with a patch appended so its checksum is target. When
// buf already matches it is returned unchanged.
func (f *Forger) Forge(buf []byte, target Value) ([]byte, error) {
	base := Checksum(buf)
	if base == target {
		return buf, nil
	}
	patch, err := f.solvePadded(base, target)
	if err != nil {
		return nil, err
	}
	if got := Extend(base, patch[:]); got != target {
		return nil, &MismatchError{Expected: target, Actual: got}
	}

	out := make([]byte, len(buf), len(buf)+len(patch))
	copy(out, buf)
	return append(out, patch[:]...), nil
}

// solvePadded derives the padded checksum from a finished one so the
// buffer is never scanned twice.
func (f *Forger) solvePadded(base, target Value) ([4]byte, error) {
	padded := Extend(base, zeroPad)
	patch, err := f.solver.Solve(uint32(padded), uint32(target))
	if err != nil {
		return [4]byte{}, fmt.Errorf("solving patch for %s: %w", target, err)
	}
	return patch, nil
}

// ForgeFile streams path once, then appends the patch. Only 4 bytes are
// written; the file is never rewritten.
func (f *Forger) ForgeFile(path string, target Value) (Result, error) {
	base, err := ChecksumFile(path, f.bufSize, nil)
	if err != nil {
		return Result{}, err
	}
	res := Result{Before: base, After: base}
	if base == target {
		slog.Debug("crc already matches", "path", path, "crc", target)
		return res, nil
	}

	patch, err := f.solvePadded(base, target)
	if err != nil {
		return res, err
	}
	if got := Extend(base, patch[:]); got != target {
		return res, &MismatchError{Expected: target, Actual: got}
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return res, fmt.Errorf("opening %s for append: %w", path, err)
	}
	if _, err := file.Write(patch[:]); err != nil {
		file.Close()
		return res, fmt.Errorf("appending patch to %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return res, fmt.Errorf("closing %s: %w", path, err)
	}

	res.After = target
	res.Patch = patch[:]
	slog.Debug("crc forged", "path", path, "before", base, "after", target, "patch", fmt.Sprintf("%X", patch))
	return res, nil
}

// RewriteFile loads path into memory, forges it and writes the whole file
// back, then re-reads it to verify.
func (f *Forger) RewriteFile(path string, target Value) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", path, err)
	}
	base := Checksum(data)
	res := Result{Before: base, After: base}
	if base == target {
		return res, nil
	}

	forged, err := f.Forge(data, target)
	if err != nil {
		return res, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return res, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, forged, info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := Compare(path, target); err != nil {
		return res, err
	}

	res.After = target
	res.Patch = forged[len(data):]
	return res, nil
}

// MatchFile forges path so that its checksum equals the one of reference.
func (f *Forger) MatchFile(path, reference string) (Result, error) {
	target, err := ChecksumFile(reference, f.bufSize, nil)
	if err != nil {
		return Result{}, fmt.Errorf("checksum of reference: %w", err)
	}
	return f.ForgeFile(path, target)
}

// Patch is Forger.Patch with the default fast solver.
func Patch(buf []byte, target Value) ([4]byte, error) {
	return defaultForger.Patch(buf, target)
}

// Forge is Forger.Forge with the default fast solver.
func Forge(buf []byte, target Value) ([]byte, error) {
	return defaultForger.Forge(buf, target)
}

// ForgeFile is Forger.ForgeFile with the default fast solver.
func ForgeFile(path string, target Value) (Result, error) {
	return defaultForger.ForgeFile(path, target)
}

// MatchFile is Forger.MatchFile with the default fast solver.
func MatchFile(path, reference string) (Result, error) {
	return defaultForger.MatchFile(path, reference)
}
