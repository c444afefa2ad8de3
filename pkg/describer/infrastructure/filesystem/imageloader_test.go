package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgeyst.com/describer/pkg/describer/domain"
)

func TestLoadImageBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cat.jpg")
	content := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}
	require.NoError(t, os.WriteFile(path, content, 0644))

	data, err := NewImageLoader().LoadImageBytes(path)
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestLoadImageBytes_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.jpg")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	data, err := LoadImageBytes(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLoadImageBytes_MissingFile(t *testing.T) {
	_, err := LoadImageBytes(filepath.Join(t.TempDir(), "missing.jpg"))
	assert.ErrorIs(t, err, domain.ErrFileAccess)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadImageBytes_Directory(t *testing.T) {
	_, err := LoadImageBytes(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrFileAccess)
}
