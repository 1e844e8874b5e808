package minio

import (
	"context"
	"io"

	"rodut/internal/domain/entity"
)

type Uploader interface {
	UploadFile(ctx context.Context, body io.Reader, fileSize int64, filename,
		contentType string,
	) (entity.StoredFile, error)
}
