package filestore

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObjectName(t *testing.T) {
	name := NewObjectName("Relatório Final.PDF")

	assert.True(t, strings.HasSuffix(name, ".pdf"), "extension should be kept lowercase: %s", name)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}-\d+\.pdf$`), name)

	// names for the same input must not collide
	other := NewObjectName("Relatório Final.PDF")
	assert.NotEqual(t, name, other)

	noExt := NewObjectName("README")
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}-\d+$`), noExt)
}

func TestDiskUploadAndRemove(t *testing.T) {
	ctx := context.Background()
	store := NewDisk(t.TempDir(), "https://cdn.example.org/storage/")

	n, err := store.Upload(ctx, "images", "abc.jpg", strings.NewReader("payload"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("payload")), n)

	assert.Equal(t,
		"https://cdn.example.org/storage/images/abc.jpg",
		store.PublicURL("images", "abc.jpg"))

	require.NoError(t, store.Remove(ctx, "images", "abc.jpg"))
	// removing a missing object is not an error
	require.NoError(t, store.Remove(ctx, "images", "abc.jpg"))
}

func TestDiskUploadWritesUnderBucket(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store := NewDisk(root, "http://localhost:3000/storage")

	_, err := store.Upload(ctx, "supporters-logos", "logo.png", strings.NewReader("png"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "supporters-logos", "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))
}

func TestDiskUploadCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewDisk(t.TempDir(), "http://localhost:3000/storage")
	_, err := store.Upload(ctx, "images", "abc.jpg", strings.NewReader("payload"))
	assert.Error(t, err)
}
