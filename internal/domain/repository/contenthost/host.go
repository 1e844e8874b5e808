package contenthost

import (
	"context"
	"io"

	"rodut/internal/domain/entity"
)

// Host is the system of record posts and media are delegated to.
type Host interface {
	FirstAdministrator(ctx context.Context) (int64, error)
	CreatePublishedPost(ctx context.Context, title, content string, authorID int64) (int64, error)
	SetFeaturedMedia(ctx context.Context, postID, mediaID int64) error
	Permalink(ctx context.Context, postID int64) (string, error)

	StoreUploadedFile(ctx context.Context, body io.Reader, size int64, filename, mimeType string) (entity.StoredFile, error)
	RegisterAttachment(ctx context.Context, stored entity.StoredFile, mimeType string) (int64, error)
	GenerateMetadata(ctx context.Context, attachmentID int64) error
	PublicURL(ctx context.Context, attachmentID int64) (string, error)
	// DiscardStoredFile removes an object whose attachment could not be registered.
	DiscardStoredFile(ctx context.Context, stored entity.StoredFile) error

	SiteTitle(ctx context.Context) (string, error)
}
