// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/udisondev/bacy/internal/db/migrations"
)

// SetupTestDB starts a PostgreSQL container holding the catalog index
// schema and returns a pool connected to it. The test is skipped with
// -short or when no container provider is available.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("bacy_test"),
		postgres.WithUsername("bacy"),
		postgres.WithPassword("bacy"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("starting postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminating postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("getting connection string: %v", err)
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connecting to test db: %v", err)
	}
	t.Cleanup(pool.Close)

	MigratePool(t, pool)
	return pool
}

// MigratePool applies the catalog index migrations to the database behind pool and
// returns the schema version.
func MigratePool(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()
	// goose needs a *sql.DB; open one over the pool's connection config.
	connStr := stdlib.RegisterConnConfig(pool.Config().ConnConfig)
	defer stdlib.UnregisterConnConfig(connStr)
	sqlDB, err := sql.Open("pgx", connStr)
	if err != nil {
		t.Fatalf("opening sql.DB: %v", err)
	}
	defer sqlDB.Close()

	version, _, err := migrations.Up(context.Background(), sqlDB)
	if err != nil {
		t.Fatalf("migrating catalog index: %v", err)
	}
	return version
}
