package minio

import (
	"context"

	"rodut/internal/domain/entity"
)

type Remover interface {
	Remove(ctx context.Context, stored entity.StoredFile) error
}
