package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dezh-tech/immortal/pkg/logger"

	"rodut/internal/application/usecase/abstraction"
	"rodut/internal/application/validator"
	"rodut/internal/domain/entity"
	"rodut/internal/domain/ingest"
	"rodut/internal/domain/repository/contenthost"
	"rodut/pkg/utils"
)

// ByteCounter receives the size of every accepted upload.
type ByteCounter interface {
	RecordUploadedBytes(n int64)
}

type Uploader struct {
	admitter  abstraction.Admitter
	validator *validator.Upload
	host      contenthost.Host
	counter   ByteCounter
}

func NewUploader(admitter abstraction.Admitter, v *validator.Upload, host contenthost.Host,
	counter ByteCounter,
) *Uploader {
	return &Uploader{
		admitter:  admitter,
		validator: v,
		host:      host,
		counter:   counter,
	}
}

func (u *Uploader) UploadMedia(ctx context.Context, callerIP, apiKey string, file *entity.IncomingFile,
) (entity.UploadedMedia, error) {
	if err := u.admitter.Admit(callerIP, apiKey); err != nil {
		return entity.UploadedMedia{}, err
	}

	if file == nil || file.Body == nil {
		return entity.UploadedMedia{}, ingest.New(ingest.NoFile, ingest.MsgNoFile)
	}

	head, err := readHead(file.Body)
	if err != nil {
		logger.Error("failed to read upload", "filename", file.Filename, "err", err)

		return entity.UploadedMedia{}, ingest.Wrap(ingest.HostError, ingest.MsgUploadFailed, err)
	}

	mimeType, err := u.validator.Validate(head, file.DeclaredType, file.Size)
	if err != nil {
		return entity.UploadedMedia{}, err
	}

	stored, err := u.host.StoreUploadedFile(ctx, file.Body, file.Size, file.Filename, mimeType)
	if err != nil {
		logger.Error("failed to store upload", "filename", file.Filename, "err", err)

		return entity.UploadedMedia{}, ingest.Wrap(ingest.HostError, ingest.MsgUploadFailed, err)
	}

	// The stored name must still resolve to the type that was validated.
	if derived := utils.MimeTypeFromFilename(stored.Filename); derived != mimeType {
		u.discard(ctx, stored)

		return entity.UploadedMedia{}, ingest.New(ingest.UnsupportedType, ingest.MsgUnsupportedType)
	}

	id, err := u.host.RegisterAttachment(ctx, stored, mimeType)
	if err != nil {
		logger.Error("failed to register attachment", "object", stored.ObjectKey, "err", err)
		u.discard(ctx, stored)

		return entity.UploadedMedia{}, ingest.Wrap(ingest.HostError, ingest.MsgUploadFailed, err)
	}

	if err := u.host.GenerateMetadata(ctx, id); err != nil {
		logger.Error("failed to generate attachment metadata", "attachment_id", id, "err", err)

		return entity.UploadedMedia{}, ingest.Wrap(ingest.HostError, ingest.MsgUploadFailed, err)
	}

	sourceURL, err := u.host.PublicURL(ctx, id)
	if err != nil {
		logger.Error("failed to resolve media url", "attachment_id", id, "err", err)

		return entity.UploadedMedia{}, ingest.Wrap(ingest.HostError, ingest.MsgUploadFailed, err)
	}

	if u.counter != nil {
		u.counter.RecordUploadedBytes(stored.Size)
	}

	logger.Info("media uploaded", "attachment_id", id, "mime_type", mimeType, "size", stored.Size)

	return entity.UploadedMedia{ID: id, SourceURL: sourceURL, MimeType: mimeType}, nil
}

func (u *Uploader) discard(ctx context.Context, stored entity.StoredFile) {
	if err := u.host.DiscardStoredFile(ctx, stored); err != nil {
		logger.Error("failed to remove stored object", "object", stored.ObjectKey, "err", err)
	}
}

// readHead returns up to SniffLength leading bytes and rewinds body.
func readHead(body io.ReadSeeker) ([]byte, error) {
	head := make([]byte, validator.SniffLength)

	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("read head: %w", err)
	}

	if _, err := body.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind: %w", err)
	}

	return head[:n], nil
}
