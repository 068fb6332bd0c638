package hash

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/bacy/internal/crc"
)

// FileCRC is the checksum of one file.
type FileCRC struct {
	Path string
	CRC  crc.Value
}

// CRC32File returns the CRC-32 of the file at path.
func CRC32File(path string) (crc.Value, error) {
	return crc.ChecksumFile(path, crc.DefaultBufferSize, nil)
}

// BatchCRC checksums paths concurrently with at most workers files open at
// once. Results keep the order of paths. The first failure cancels the rest.
func BatchCRC(ctx context.Context, paths []string, workers int) ([]FileCRC, error) {
	if workers <= 0 {
		workers = 1
	}
	out := make([]FileCRC, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := CRC32File(p)
			if err != nil {
				return fmt.Errorf("checksum %s: %w", p, err)
			}
			out[i] = FileCRC{Path: p, CRC: v}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("batch crc done", "files", len(paths), "workers", workers)
	return out, nil
}
