package minio

import (
	"context"
	"io"
)

type Reader interface {
	Open(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error)
}
