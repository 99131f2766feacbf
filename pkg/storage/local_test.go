package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zahrirmdn/loreomah/pkg/storage"
)

func TestLocalStorageUpload(t *testing.T) {
	root := t.TempDir()
	s, err := storage.NewLocalStorage(root)
	require.NoError(t, err)

	err = s.Upload("gallery/photo.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "gallery", "photo.jpg"))
	require.NoError(t, err)
	require.Equal(t, "image-bytes", string(data))
}

func TestLocalStorageURLKeyRoundtrip(t *testing.T) {
	s, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	url := s.URL("sliders/banner.png")
	require.Equal(t, "/uploads/sliders/banner.png", url)
	require.Equal(t, "sliders/banner.png", s.Key(url))
}

func TestLocalStorageDelete(t *testing.T) {
	root := t.TempDir()
	s, err := storage.NewLocalStorage(root)
	require.NoError(t, err)

	require.NoError(t, s.Upload("gallery/photo.jpg", strings.NewReader("x")))
	require.NoError(t, s.Delete("gallery/photo.jpg"))
	_, err = os.Stat(filepath.Join(root, "gallery", "photo.jpg"))
	require.True(t, os.IsNotExist(err))

	// deleting again is not an error
	require.NoError(t, s.Delete("gallery/photo.jpg"))
}
