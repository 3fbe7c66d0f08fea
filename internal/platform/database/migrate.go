package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/tern/v2/migrate"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const (
	// migrationLockID is the advisory lock key shared by every migrating
	// process ("recruit" in ASCII hex).
	migrationLockID             = 0x72656372756974
	migrationLockReleaseTimeout = 5 * time.Second
	versionTable                = "public.schema_version"
)

// Migrate opens a dedicated pgx connection to databaseURL and applies every
// pending embedded migration under a PostgreSQL advisory lock, so replicas
// starting together apply each migration once. It returns the names of the
// migrations this call applied.
func Migrate(ctx context.Context, databaseURL string, logger *slog.Logger) ([]string, error) {
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect for migration: %w", err)
	}
	defer func() { _ = conn.Close(context.Background()) }()

	release, err := migrationLock(ctx, conn, logger)
	if err != nil {
		return nil, err
	}
	defer release()

	return runMigrations(ctx, conn, logger)
}

func runMigrations(ctx context.Context, conn *pgx.Conn, logger *slog.Logger) ([]string, error) {
	migrationFS, err := migrationsFS()
	if err != nil {
		return nil, err
	}

	migrator, err := migrate.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	if err := migrator.LoadMigrations(migrationFS); err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}

	current, err := migrator.GetCurrentVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("read schema version: %w", err)
	}
	logger.InfoContext(ctx, "current schema version", "version", current, "latest", len(migrator.Migrations))

	var applied []string
	migrator.OnStart = func(sequence int32, name, direction, _ string) {
		applied = append(applied, name)
		logger.InfoContext(ctx, "applying migration", "sequence", sequence, "name", name, "direction", direction)
	}
	if err := migrator.Migrate(ctx); err != nil {
		return applied, fmt.Errorf("migrate database: %w", err)
	}
	return applied, nil
}

func migrationsFS() (fs.FS, error) {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}
	return sub, nil
}

// migrationLock blocks until the advisory lock is held. The returned func
// releases it on a fresh context so a cancelled ctx still unlocks.
func migrationLock(ctx context.Context, conn *pgx.Conn, logger *slog.Logger) (func(), error) {
	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", migrationLockID); err != nil {
		return func() {}, fmt.Errorf("acquire migration lock: %w", err)
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), migrationLockReleaseTimeout)
		defer cancel()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", migrationLockID); err != nil {
			logger.Error("failed to release migration lock", "error", err)
		}
	}, nil
}
