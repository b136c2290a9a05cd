package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flora/config"
)

func newTestStorage(t *testing.T) *blobStorage {
	t.Helper()

	cfg := &config.Config{
		Storage: &config.StorageConfig{
			BucketURL:     "mem://",
			PublicBaseURL: "http://media.local/",
		},
	}

	s, closer, err := NewBlobStorage(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	return s.(*blobStorage)
}

func TestBlobStorage_RequiresBucketURL(t *testing.T) {
	_, _, err := NewBlobStorage(&config.Config{})
	assert.Error(t, err)
}

func TestBlobStorage_UploadAndDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	url, err := s.Upload(ctx, "leaf.JPG", "image/jpeg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://media.local/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	assert.NoError(t, s.Delete(ctx, url))
}

func TestBlobStorage_UploadKeysAreUnique(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	first, err := s.Upload(ctx, "note.png", "image/png", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := s.Upload(ctx, "note.png", "image/png", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBlobStorage_DeleteIgnoresForeignURL(t *testing.T) {
	s := newTestStorage(t)

	assert.NoError(t, s.Delete(context.Background(), "http://elsewhere.example/img.png"))
}
