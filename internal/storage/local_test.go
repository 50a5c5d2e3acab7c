package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadAndRemove(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, "http://localhost:8080/uploads/")

	url, err := store.Upload(context.Background(), "avatars/abc/photo.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/avatars/abc/photo.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "avatars", "abc", "photo.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Remove(context.Background(), "avatars/abc/photo.png"))
	_, err = os.Stat(filepath.Join(dir, "avatars", "abc", "photo.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_RemoveMissingIsNoop(t *testing.T) {
	store := NewLocal(t.TempDir(), "http://localhost:8080/uploads")
	assert.NoError(t, store.Remove(context.Background(), "never/was/here.pdf"))
}

func TestLocalStorage_PathTraversalStaysInRoot(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, "http://localhost:8080/uploads")

	_, err := store.Upload(context.Background(), "../../etc/evil.txt", strings.NewReader("x"))
	require.NoError(t, err)

	// The traversal segments are stripped, the file lands inside root.
	_, statErr := os.Stat(filepath.Join(dir, "etc", "evil.txt"))
	assert.NoError(t, statErr)
}
