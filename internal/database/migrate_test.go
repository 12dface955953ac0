package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/authgate/internal/database/migrations"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"00001_create_users.sql", "00002_create_trusted_devices.sql"}, entries)
}

func TestMigrate(t *testing.T) {
	original := up
	t.Cleanup(func() { up = original })

	t.Run("success", func(t *testing.T) {
		var gotDir string
		up = func(_ context.Context, _ *sql.DB, dir string) error {
			gotDir = dir
			return nil
		}
		require.NoError(t, Migrate(context.Background(), nil))
		assert.Equal(t, ".", gotDir)
	})

	t.Run("failure", func(t *testing.T) {
		up = func(context.Context, *sql.DB, string) error {
			return errors.New("boom")
		}
		err := Migrate(context.Background(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to apply migrations")
	})
}
