package database

import (
	"context"

	"rodut/internal/domain/model"
)

type PostWriter interface {
	InsertPost(ctx context.Context, post *model.Post) error
	SetThumbnail(ctx context.Context, postID, attachmentID int64) error
}

type AttachmentWriter interface {
	InsertAttachment(ctx context.Context, attachment *model.Attachment) error
	UpdateMetadata(ctx context.Context, id int64, metadata *model.AttachmentMetadata) error
}
