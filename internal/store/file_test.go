package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileBackend_EmptyPath(t *testing.T) {
	_, err := NewFileBackend("")
	assert.Error(t, err)
}

func TestFileBackend_ReadMissingFile(t *testing.T) {
	backend, err := NewFileBackend(filepath.Join(t.TempDir(), "resume.json"))
	require.NoError(t, err)

	data, err := backend.Read(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestFileBackend_WriteRead(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "resume.json")
	backend, err := NewFileBackend(path)
	require.NoError(t, err)

	require.NoError(t, backend.Write(ctx, []byte(`{"a":1}`)))

	data, err := backend.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), data)
}

func TestFileBackend_WriteOverwrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "resume.json")
	backend, err := NewFileBackend(path)
	require.NoError(t, err)

	require.NoError(t, backend.Write(ctx, []byte("first")))
	require.NoError(t, backend.Write(ctx, []byte("second")))

	data, err := backend.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestFileBackend_WriteCreatesParentDir(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "resume.json")
	backend, err := NewFileBackend(path)
	require.NoError(t, err)

	require.NoError(t, backend.Write(ctx, []byte("ok")))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFileBackend_WriteLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	backend, err := NewFileBackend(filepath.Join(dir, "resume.json"))
	require.NoError(t, err)

	require.NoError(t, backend.Write(ctx, []byte("ok")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "resume.json", entries[0].Name())
}
