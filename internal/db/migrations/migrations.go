// Package migrations embeds the catalog index schema and applies it with
// goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Up applies pending migrations to sqlDB and returns the resulting schema
// version and the number of migrations applied by this call.
func Up(ctx context.Context, sqlDB *sql.DB) (version int64, applied int, err error) {
	p, err := goose.NewProvider(goose.DialectPostgres, sqlDB, FS)
	if err != nil {
		return 0, 0, fmt.Errorf("creating goose provider: %w", err)
	}

	results, err := p.Up(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("applying migrations: %w", err)
	}
	for _, r := range results {
		slog.Debug("migration applied", "version", r.Source.Version, "path", r.Source.Path, "duration", r.Duration)
	}

	version, err = p.GetDBVersion(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("reading schema version: %w", err)
	}
	return version, len(results), nil
}
