// Package storage provides the blob-backed implementation of the file
// storage domain service, used for note media uploads.
package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"gocloud.dev/blob"

	// Register the bucket schemes we support opening by URL.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"

	"flora/config"
	"flora/internal/domain/lifecycle"
	"flora/internal/domain/service"
	"flora/internal/errors"
)

// blobStorage stores uploaded files in a gocloud.dev bucket and serves
// them under a public base URL.
type blobStorage struct {
	bucket  *blob.Bucket
	baseURL string
}

// NewBlobStorage opens the bucket named by the storage configuration.
// The caller owns the returned closer and should hook it into shutdown.
func NewBlobStorage(cfg *config.Config) (service.FileStorage, func() error, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, nil, errors.New("storage bucket url must be provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open storage bucket")
	}

	s := &blobStorage{
		bucket:  bucket,
		baseURL: strings.TrimSuffix(cfg.Storage.PublicBaseURL, "/"),
	}

	return s, bucket.Close, nil
}

// Upload writes the content under a fresh key and returns its public URL.
// The original filename only contributes its extension; the key itself
// is random so uploads never collide or overwrite.
func (s *blobStorage) Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	key := uuid.NewString() + strings.ToLower(path.Ext(filename))

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "open blob writer")
	}

	if _, err := io.Copy(w, content); err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "write blob")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "close blob writer")
	}

	return s.baseURL + "/" + key, nil
}

// Delete removes the object a previously returned URL points at.
// Unknown URLs are ignored so callers can pass through stored values
// without first checking their origin.
func (s *blobStorage) Delete(ctx context.Context, url string) error {
	prefix := s.baseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return nil
	}
	key := strings.TrimPrefix(url, prefix)

	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "delete blob")
	}

	return nil
}
