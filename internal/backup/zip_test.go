package backup

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Ziper_ZipFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "dyndns_config.json")
	err := os.WriteFile(inputPath, []byte(`{"domains":[]}`), 0o600)
	require.NoError(t, err)

	outputPath := filepath.Join(dir, "backups", "backup.zip")
	ziper := NewZiper()
	err = ziper.ZipFiles(outputPath, inputPath)
	require.NoError(t, err)

	reader, err := zip.OpenReader(outputPath)
	require.NoError(t, err)
	defer reader.Close()

	require.Len(t, reader.File, 1)
	assert.Equal(t, "dyndns_config.json", reader.File[0].Name)
	file, err := reader.File[0].Open()
	require.NoError(t, err)
	defer file.Close()
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, `{"domains":[]}`, string(content))
}

func Test_Ziper_ZipFiles_missingInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "missing.json")
	outputPath := filepath.Join(dir, "backup.zip")

	ziper := NewZiper()
	err := ziper.ZipFiles(outputPath, inputPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
