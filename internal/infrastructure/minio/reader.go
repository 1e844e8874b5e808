package minio

import (
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

type Reader struct {
	minioClient *minio.Client
	cfg         *ReaderConfig
}

func NewReader(minioClient *minio.Client, cfg *ReaderConfig) *Reader {
	return &Reader{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Open returns the object body. The deadline covers the whole read, so the
// caller must close the reader before it expires.
func (r *Reader) Open(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)

	obj, err := r.minioClient.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		cancel()

		return nil, err
	}

	return &cancelOnClose{ReadCloser: obj, cancel: cancel}, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	defer c.cancel()

	return c.ReadCloser.Close()
}
