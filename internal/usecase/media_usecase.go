package usecase

import (
	"context"
	"io"
)

// MediaUsecase defines the interface for note media uploads. Uploaded
// files land in blob storage and their URLs are attached to note events
// by the client.
type MediaUsecase interface {
	// Upload stores one file and returns its public URL.
	Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error)
}
