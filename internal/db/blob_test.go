package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a test database in memory
func setupTestDB(t *testing.T) (*Repositories, func()) {
	t.Helper()

	database, err := New(":memory:")
	require.NoError(t, err)

	sqlDB, err := database.GetSQLDB()
	require.NoError(t, err)
	err = RunMigrations(sqlDB, "file://../../migrations")
	require.NoError(t, err)

	repos := NewRepositories(database)

	cleanup := func() {
		_ = database.Close()
	}

	return repos, cleanup
}

func TestBlobRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("read of absent key reports not found without error", func(t *testing.T) {
		repos, cleanup := setupTestDB(t)
		defer cleanup()

		value, ok, err := repos.Blobs.Read(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("write then read round-trips", func(t *testing.T) {
		repos, cleanup := setupTestDB(t)
		defer cleanup()

		require.NoError(t, repos.Blobs.Write(ctx, "catalog_entries", `[{"id":"m1"}]`))

		value, ok, err := repos.Blobs.Read(ctx, "catalog_entries")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":"m1"}]`, value)
	})

	t.Run("write overwrites existing value", func(t *testing.T) {
		repos, cleanup := setupTestDB(t)
		defer cleanup()

		require.NoError(t, repos.Blobs.Write(ctx, "k", "first"))
		require.NoError(t, repos.Blobs.Write(ctx, "k", "second"))

		value, ok, err := repos.Blobs.Read(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "second", value)
	})

	t.Run("keys are independent", func(t *testing.T) {
		repos, cleanup := setupTestDB(t)
		defer cleanup()

		require.NoError(t, repos.Blobs.Write(ctx, "a", "1"))
		require.NoError(t, repos.Blobs.Write(ctx, "b", "2"))

		value, _, err := repos.Blobs.Read(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "1", value)
	})

	t.Run("delete removes the key and tolerates absence", func(t *testing.T) {
		repos, cleanup := setupTestDB(t)
		defer cleanup()

		require.NoError(t, repos.Blobs.Write(ctx, "k", "v"))
		require.NoError(t, repos.Blobs.Delete(ctx, "k"))

		_, ok, err := repos.Blobs.Read(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, repos.Blobs.Delete(ctx, "k"))
	})
}

func TestMapGormError(t *testing.T) {
	assert.Nil(t, MapGormError(nil))
	assert.True(t, IsNotFound(ErrNotFound))
	assert.False(t, IsNotFound(ErrDuplicate))
}
