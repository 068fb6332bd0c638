package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/udisondev/bacy/internal/db/migrations"
)

// RunMigrations brings the catalog index schema at dsn up to date.
func RunMigrations(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("opening sql connection for migrations: %w", err)
	}
	defer sqlDB.Close()

	version, applied, err := migrations.Up(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("catalog schema ready", "version", version, "applied", applied)
	return nil
}
