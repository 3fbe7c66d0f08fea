//go:build integration

package database_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruit/internal/platform/database"
	"recruit/pkg/testutil/containers"
)

func TestMigrate_ConcurrentRunnersApplyOnce(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	ctx := context.Background()
	log := slog.New(slog.DiscardHandler)

	const runners = 4
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied []string
		errs    []error
	)
	for range runners {
		wg.Add(1)
		go func() {
			defer wg.Done()
			names, err := database.Migrate(ctx, pg.DSN, log)
			mu.Lock()
			defer mu.Unlock()
			applied = append(applied, names...)
			if err != nil {
				errs = append(errs, err)
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, errs)
	assert.Equal(t, []string{"001_init.sql"}, applied, "each migration runs exactly once across runners")

	var version int32
	require.NoError(t, pg.DB.QueryRowContext(ctx, `SELECT version FROM public.schema_version`).Scan(&version))
	assert.Equal(t, int32(1), version)

	again, err := database.Migrate(ctx, pg.DSN, log)
	require.NoError(t, err)
	assert.Empty(t, again)
}
