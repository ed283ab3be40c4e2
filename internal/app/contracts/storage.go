package contracts

import (
	"context"
	"io"
)

type ObjectStorage interface {
	UploadObject(ctx context.Context, bucketName, objectName, contentType string, data io.Reader, size int64) (string, error)
}
