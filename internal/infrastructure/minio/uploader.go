package minio

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"rodut/internal/domain/entity"
)

type Uploader struct {
	minioClient *minio.Client
	cfg         *UploaderConfig
	now         func() time.Time
}

func NewUploader(minioClient *minio.Client, config *UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         config,
		now:         time.Now,
	}
}

// UploadFile streams body into the bucket under "<prefix>/YYYY/MM/<uuid>/<filename>".
// Exactly fileSize bytes must arrive; otherwise the object is removed.
func (u *Uploader) UploadFile(ctx context.Context, body io.Reader, fileSize int64, filename,
	contentType string,
) (entity.StoredFile, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	objectKey := u.objectKey(filename)
	counter := &countingReader{r: body}

	_, err := u.minioClient.PutObject(ctx, u.cfg.Bucket, objectKey, io.LimitReader(counter, fileSize), fileSize,
		minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		logger.Error("failed to upload object", "object", objectKey, "err", err)

		return entity.StoredFile{}, fmt.Errorf("object upload failed: %w", err)
	}

	if err := validateFileSize(counter.n, fileSize, hasTrailingBytes(body)); err != nil {
		u.cleanup(ctx, objectKey)

		return entity.StoredFile{}, err
	}

	return entity.StoredFile{
		Bucket:    u.cfg.Bucket,
		ObjectKey: objectKey,
		Filename:  filename,
		Size:      counter.n,
	}, nil
}

func (u *Uploader) objectKey(filename string) string {
	now := u.now().UTC()

	return path.Join(u.cfg.Prefix, now.Format("2006"), now.Format("01"), uuid.New().String(), filename)
}

func (u *Uploader) cleanup(ctx context.Context, objectKey string) {
	err := u.minioClient.RemoveObject(ctx, u.cfg.Bucket, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		logger.Error("failed to cleanup object", "object", objectKey, "err", err)
	}
}

func validateFileSize(totalBytes, expectedSize int64, trailing bool) error {
	if trailing {
		return fmt.Errorf("file size mismatch: more than %d bytes sent", expectedSize)
	}

	if totalBytes != expectedSize {
		return fmt.Errorf("file size mismatch: read %d bytes, expected %d", totalBytes, expectedSize)
	}

	return nil
}

func hasTrailingBytes(r io.Reader) bool {
	var one [1]byte
	n, _ := io.ReadFull(r, one[:])

	return n > 0
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}
