package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoStore(t *testing.T) {
	t.Run("store and retrieve round trip", func(t *testing.T) {
		store := NewPhotoStore(t.TempDir())

		path, err := store.Store([]byte("jpeg bytes"))
		require.NoError(t, err)
		require.NotEmpty(t, path)

		data, err := store.Retrieve(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg bytes"), data)
	})

	t.Run("each upload gets its own file", func(t *testing.T) {
		store := NewPhotoStore(t.TempDir())

		first, err := store.Store([]byte("one"))
		require.NoError(t, err)
		second, err := store.Store([]byte("one"))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("retrieve of unknown path fails with not found", func(t *testing.T) {
		store := NewPhotoStore(t.TempDir())

		_, err := store.Retrieve(filepath.Join(t.TempDir(), "nope.jpg"))

		assert.ErrorIs(t, err, ErrPhotoNotFound)
	})
}
