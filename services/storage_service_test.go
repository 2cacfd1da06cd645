package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lahmah_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *StorageService {
	t.Helper()

	cfg := &structs.Config{
		Storage: &structs.StorageConfig{
			Root:          t.TempDir(),
			PublicBaseURL: "http://localhost:8084/files/",
			DefaultBucket: "images",
		},
	}
	return NewStorageService(gecho.NewDefaultLogger(), cfg)
}

func TestStorageSave(t *testing.T) {
	ss := newTestStorage(t)

	stored, err := ss.Save("products", "lamb-shank.JPG", strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	assert.Equal(t, "products", stored.Bucket)
	assert.True(t, strings.HasSuffix(stored.Name, ".JPG"))
	assert.Equal(t, "http://localhost:8084/files/products/"+stored.Name, stored.PublicURL)

	content, err := os.ReadFile(filepath.Join(ss.Root(), "products", stored.Name))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(content))
}

func TestStorageSave_DefaultBucket(t *testing.T) {
	ss := newTestStorage(t)

	stored, err := ss.Save("", "banner.png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "images", stored.Bucket)
}

func TestStorageSave_RandomizedNames(t *testing.T) {
	ss := newTestStorage(t)

	first, err := ss.Save("products", "photo.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := ss.Save("products", "photo.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first.Name, second.Name)
}

func TestStorageSave_RejectsBadBucket(t *testing.T) {
	ss := newTestStorage(t)

	for _, bucket := range []string{"../escape", "UPPER", "has space", "dot.dot"} {
		_, err := ss.Save(bucket, "f.png", strings.NewReader("x"))
		assert.Error(t, err, "bucket %q should be rejected", bucket)
	}
}

func TestStorageDelete(t *testing.T) {
	ss := newTestStorage(t)

	stored, err := ss.Save("products", "gone.png", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, ss.Delete("products", stored.Name))
	_, statErr := os.Stat(filepath.Join(ss.Root(), "products", stored.Name))
	assert.True(t, os.IsNotExist(statErr))

	// Deleting again is not an error
	assert.NoError(t, ss.Delete("products", stored.Name))

	// Path traversal in the object name is refused
	assert.Error(t, ss.Delete("products", "../secret"))
}
