package backup_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"lynx-bridge/core/backup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2024, 2, 17, 9, 5, 3, 0, time.Local)

func TestPath(t *testing.T) {
	got := backup.Path(filepath.Join("races", "lynx.evt"), "backups", stamp)
	assert.Equal(t, filepath.Join("races", "backups", "lynx.20240217090503.evt"), got)

	t.Run("No extension", func(t *testing.T) {
		got := backup.Path("lynx", "bk", stamp)
		assert.Equal(t, filepath.Join("bk", "lynx.20240217090503"), got)
	})
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "lynx.evt")
	content := []byte("1,,,\"Open\",,,,,,,,,4\r\n")
	require.NoError(t, os.WriteFile(target, content, 0o644))

	path, err := backup.Create(target, "backups", stamp)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "backups", "lynx.20240217090503.evt"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	t.Run("Same second does not overwrite", func(t *testing.T) {
		_, err := backup.Create(target, "backups", stamp)
		require.Error(t, err)
		assert.ErrorIs(t, err, backup.ErrBackupFailed)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})
}

func TestCreate_Failures(t *testing.T) {
	dir := t.TempDir()

	t.Run("Missing target", func(t *testing.T) {
		_, err := backup.Create(filepath.Join(dir, "missing.evt"), "backups", stamp)
		require.Error(t, err)
		assert.ErrorIs(t, err, backup.ErrBackupFailed)
		assert.Contains(t, err.Error(), "missing.evt")
	})

	t.Run("Backup directory blocked by a file", func(t *testing.T) {
		target := filepath.Join(dir, "lynx.evt")
		require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "blocked"), []byte("x"), 0o644))

		_, err := backup.Create(target, "blocked", stamp)
		require.Error(t, err)
		assert.ErrorIs(t, err, backup.ErrBackupFailed)
	})

	t.Run("Empty directory name", func(t *testing.T) {
		_, err := backup.Create(filepath.Join(dir, "lynx.evt"), " ", stamp)
		assert.ErrorIs(t, err, backup.ErrBackupFailed)
	})
}
