package migrate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceURL(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "000001_init.up.sql")
	require.NoError(t, os.WriteFile(file, []byte("SELECT 1;"), 0o600))

	t.Run("plain directory", func(t *testing.T) {
		got, err := sourceURL(dir)
		require.NoError(t, err)
		assert.Equal(t, "file://"+dir, got)
	})

	t.Run("file url is not prefixed twice", func(t *testing.T) {
		got, err := sourceURL("file://" + dir)
		require.NoError(t, err)
		assert.Equal(t, "file://"+dir, got)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := sourceURL(filepath.Join(dir, "nope"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		_, err := sourceURL(file)
		assert.ErrorContains(t, err, "not a directory")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := sourceURL("  ")
		assert.Error(t, err)
	})
}
