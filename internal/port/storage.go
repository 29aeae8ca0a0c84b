package port

import (
	"context"
	"io"
)

// UploadInput carries one spreadsheet blob (a monthly report or a
// department template) to the object store.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput describes where a stored blob ended up.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage is the blob store behind uploads and templates. Reads
// happen through presigned URLs so file bytes never stream through the
// API server.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Delete(ctx context.Context, bucket, key string) error
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
