package database

import (
	"context"

	"github.com/dezh-tech/immortal/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"

	"rodut/internal/domain/model"
	repository "rodut/internal/domain/repository/database"
)

type PostWriter struct {
	db *Database
}

func NewPostWriter(db *Database) *PostWriter {
	return &PostWriter{db: db}
}

func (w *PostWriter) InsertPost(ctx context.Context, post *model.Post) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	if _, err := w.db.collection(PostCollection).InsertOne(ctx, post); err != nil {
		logger.Error("failed to insert post", "post_id", post.ID, "err", err)

		return err
	}

	return nil
}

// SetThumbnail fails with ErrNotFound when either side does not exist.
func (w *PostWriter) SetThumbnail(ctx context.Context, postID, attachmentID int64) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	n, err := w.db.collection(AttachmentCollection).CountDocuments(ctx, bson.M{"_id": attachmentID})
	if err != nil {
		logger.Error("failed to look up thumbnail attachment", "attachment_id", attachmentID, "err", err)

		return err
	}

	if n == 0 {
		return repository.ErrNotFound
	}

	res, err := w.db.collection(PostCollection).UpdateByID(ctx, postID,
		bson.M{"$set": bson.M{"thumbnail_id": attachmentID}})
	if err != nil {
		logger.Error("failed to set thumbnail", "post_id", postID, "err", err)

		return err
	}

	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

type AttachmentWriter struct {
	db *Database
}

func NewAttachmentWriter(db *Database) *AttachmentWriter {
	return &AttachmentWriter{db: db}
}

func (w *AttachmentWriter) InsertAttachment(ctx context.Context, attachment *model.Attachment) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	if _, err := w.db.collection(AttachmentCollection).InsertOne(ctx, attachment); err != nil {
		logger.Error("failed to insert attachment", "attachment_id", attachment.ID, "err", err)

		return err
	}

	return nil
}

func (w *AttachmentWriter) UpdateMetadata(ctx context.Context, id int64, metadata *model.AttachmentMetadata) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	res, err := w.db.collection(AttachmentCollection).UpdateByID(ctx, id,
		bson.M{"$set": bson.M{"metadata": metadata}})
	if err != nil {
		logger.Error("failed to update attachment metadata", "attachment_id", id, "err", err)

		return err
	}

	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}
