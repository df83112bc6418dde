package entity

import (
	"context"
	"io"
)

// BlobStorage mirrors finished recordings to an S3-compatible store.
type BlobStorage interface {
	UploadObject(ctx context.Context, bucket string, key string, r io.Reader) error
}
