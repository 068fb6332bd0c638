package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/bacy/internal/catalog"
)

// CatalogRepository stores catalog entries keyed by their catalog key.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// SaveMedia upserts every entry of c in a single transaction.
func (r *CatalogRepository) SaveMedia(ctx context.Context, c *catalog.MediaCatalog) error {
	keys := c.Keys()
	if len(keys) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	batch := &pgx.Batch{}
	for _, k := range keys {
		m := c.Table[k]
		batch.Queue(
			`INSERT INTO media_entries
			 (key, path, file_name, bytes, crc, is_prologue, is_split_download, media_type, updated_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NOW())
			 ON CONFLICT (key) DO UPDATE SET
			  path=$2, file_name=$3, bytes=$4, crc=$5,
			  is_prologue=$6, is_split_download=$7, media_type=$8, updated_at=NOW()`,
			k, m.Path, m.FileName, m.Bytes, m.Crc, m.IsPrologue, m.IsSplitDownload, m.MediaType,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range keys {
		if _, err := br.Exec(); err != nil {
			br.Close() //nolint:errcheck
			return fmt.Errorf("save media batch: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close media batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit media: %w", err)
	}
	slog.Info("media catalog indexed", "entries", len(keys))
	return nil
}

// SaveTables upserts every entry of c in a single transaction.
func (r *CatalogRepository) SaveTables(ctx context.Context, c *catalog.TableCatalog) error {
	keys := c.Keys()
	if len(keys) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	batch := &pgx.Batch{}
	for _, k := range keys {
		t := c.Table[k]
		batch.Queue(
			`INSERT INTO table_entries
			 (key, name, size, crc, is_in_build, is_changed, is_prologue, is_split_download, includes, updated_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW())
			 ON CONFLICT (key) DO UPDATE SET
			  name=$2, size=$3, crc=$4, is_in_build=$5, is_changed=$6,
			  is_prologue=$7, is_split_download=$8, includes=$9, updated_at=NOW()`,
			k, t.Name, t.Size, t.Crc, t.IsInBuild, t.IsChanged, t.IsPrologue, t.IsSplitDownload, t.Includes,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range keys {
		if _, err := br.Exec(); err != nil {
			br.Close() //nolint:errcheck
			return fmt.Errorf("save table batch: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close table batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tables: %w", err)
	}
	slog.Info("table catalog indexed", "entries", len(keys))
	return nil
}

// GetMedia loads one media entry.
// Returns nil if the key is not indexed (not an error).
func (r *CatalogRepository) GetMedia(ctx context.Context, key string) (*catalog.Media, error) {
	var m catalog.Media
	err := r.pool.QueryRow(ctx,
		`SELECT path, file_name, bytes, crc, is_prologue, is_split_download, media_type
		 FROM media_entries WHERE key = $1`, key,
	).Scan(&m.Path, &m.FileName, &m.Bytes, &m.Crc, &m.IsPrologue, &m.IsSplitDownload, &m.MediaType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying media %q: %w", key, err)
	}
	return &m, nil
}

// GetTable loads one table entry.
// Returns nil if the key is not indexed (not an error).
func (r *CatalogRepository) GetTable(ctx context.Context, key string) (*catalog.Table, error) {
	var t catalog.Table
	err := r.pool.QueryRow(ctx,
		`SELECT name, size, crc, is_in_build, is_changed, is_prologue, is_split_download, includes
		 FROM table_entries WHERE key = $1`, key,
	).Scan(&t.Name, &t.Size, &t.Crc, &t.IsInBuild, &t.IsChanged, &t.IsPrologue, &t.IsSplitDownload, &t.Includes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying table %q: %w", key, err)
	}
	return &t, nil
}

// ChangedMedia returns the sorted keys of c that are new or whose CRC
// differs from the indexed entry.
func (r *CatalogRepository) ChangedMedia(ctx context.Context, c *catalog.MediaCatalog) ([]string, error) {
	indexed, err := r.crcs(ctx, `SELECT key, crc FROM media_entries`)
	if err != nil {
		return nil, fmt.Errorf("loading media crcs: %w", err)
	}
	var changed []string
	for _, k := range c.Keys() {
		if crc, ok := indexed[k]; !ok || crc != c.Table[k].Crc {
			changed = append(changed, k)
		}
	}
	return changed, nil
}

// ChangedTables is ChangedMedia for table catalogs.
func (r *CatalogRepository) ChangedTables(ctx context.Context, c *catalog.TableCatalog) ([]string, error) {
	indexed, err := r.crcs(ctx, `SELECT key, crc FROM table_entries`)
	if err != nil {
		return nil, fmt.Errorf("loading table crcs: %w", err)
	}
	var changed []string
	for _, k := range c.Keys() {
		if crc, ok := indexed[k]; !ok || crc != c.Table[k].Crc {
			changed = append(changed, k)
		}
	}
	return changed, nil
}

func (r *CatalogRepository) crcs(ctx context.Context, query string) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var (
			key string
			crc int64
		)
		if err := rows.Scan(&key, &crc); err != nil {
			return nil, err
		}
		out[key] = crc
	}
	return out, rows.Err()
}
