package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/domain"
	"stockroom/internal/repository"
	"stockroom/internal/storage"
)

func TestOrphanWorker_CountOrphans(t *testing.T) {
	dir := t.TempDir()
	repo := repository.NewInventoryRepository(dir)
	require.NoError(t, repo.EnsureInitialized())
	photos := storage.NewPhotoStore(dir)
	w := NewOrphanWorker(repo, dir, time.Hour)

	t.Run("empty cache has no orphans", func(t *testing.T) {
		count, err := w.CountOrphans()
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("referenced photos are not orphans", func(t *testing.T) {
		path, err := photos.Store([]byte("kept"))
		require.NoError(t, err)
		require.NoError(t, repo.SaveAll([]domain.Item{{ID: "1", Name: "Drill", PhotoPath: path}}))

		count, err := w.CountOrphans()
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("replaced photo becomes an orphan", func(t *testing.T) {
		replacement, err := photos.Store([]byte("new"))
		require.NoError(t, err)
		require.NoError(t, repo.SaveAll([]domain.Item{{ID: "1", Name: "Drill", PhotoPath: replacement}}))

		count, err := w.CountOrphans()
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("deleted item leaves its photos orphaned", func(t *testing.T) {
		require.NoError(t, repo.SaveAll([]domain.Item{}))

		count, err := w.CountOrphans()
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
