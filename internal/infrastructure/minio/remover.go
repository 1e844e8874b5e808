package minio

import (
	"context"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/minio/minio-go/v7"

	"rodut/internal/domain/entity"
)

type Remover struct {
	minioClient *minio.Client
	cfg         *RemoverConfig
}

func NewRemover(minioClient *minio.Client, cfg *RemoverConfig) *Remover {
	return &Remover{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (r *Remover) Remove(ctx context.Context, stored entity.StoredFile) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	err := r.minioClient.RemoveObject(ctx, stored.Bucket, stored.ObjectKey, minio.RemoveObjectOptions{})
	if err != nil {
		logger.Error("failed to remove object", "object", stored.ObjectKey, "err", err)

		return err
	}

	return nil
}
