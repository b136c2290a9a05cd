package service

import (
	"context"
	"io"
)

// FileStorage stores note-event media and returns publicly resolvable
// URLs. Implementations sit on an object store; the domain only sees
// keys and URLs.
type FileStorage interface {
	// Upload writes the content under a generated key and returns the
	// URL the stored object is reachable at.
	Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error)

	// Delete removes a previously uploaded object by its URL. Unknown
	// URLs are not an error.
	Delete(ctx context.Context, url string) error
}
