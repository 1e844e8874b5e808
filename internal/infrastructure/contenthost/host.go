package contenthost

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for metadata generation
	_ "image/png"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"

	"rodut/internal/domain/entity"
	"rodut/internal/domain/model"
	"rodut/internal/domain/repository/broker"
	"rodut/internal/domain/repository/database"
	"rodut/internal/domain/repository/minio"
	"rodut/pkg/utils"
)

// Host stores posts and attachments in the document store and file bytes in
// object storage.
type Host struct {
	sequencer   database.Sequencer
	users       database.UserRetriever
	options     database.OptionRetriever
	posts       database.PostWriter
	attachments database.AttachmentWriter
	attachRead  database.AttachmentRetriever
	uploader    minio.Uploader
	reader      minio.Reader
	remover     minio.Remover
	publisher   broker.Publisher
	cfg         Config
	now         func() time.Time
}

type Deps struct {
	Sequencer   database.Sequencer
	Users       database.UserRetriever
	Options     database.OptionRetriever
	Posts       database.PostWriter
	Attachments database.AttachmentWriter
	AttachRead  database.AttachmentRetriever
	Uploader    minio.Uploader
	Reader      minio.Reader
	Remover     minio.Remover
	Publisher   broker.Publisher
}

func New(deps Deps, cfg Config) *Host {
	return &Host{
		sequencer:   deps.Sequencer,
		users:       deps.Users,
		options:     deps.Options,
		posts:       deps.Posts,
		attachments: deps.Attachments,
		attachRead:  deps.AttachRead,
		uploader:    deps.Uploader,
		reader:      deps.Reader,
		remover:     deps.Remover,
		publisher:   deps.Publisher,
		cfg:         cfg,
		now:         time.Now,
	}
}

// ContentSequence is shared by posts and attachments so ids never collide.
const ContentSequence = "content"

func (h *Host) FirstAdministrator(ctx context.Context) (int64, error) {
	user, err := h.users.FirstAdministrator(ctx)
	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

func (h *Host) CreatePublishedPost(ctx context.Context, title, content string, authorID int64) (int64, error) {
	id, err := h.sequencer.NextID(ctx, ContentSequence)
	if err != nil {
		return 0, fmt.Errorf("allocate post id: %w", err)
	}

	err = h.posts.InsertPost(ctx, &model.Post{
		ID:        id,
		Title:     title,
		Content:   content,
		Status:    model.PostStatusPublish,
		AuthorID:  authorID,
		CreatedAt: h.now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}

	return id, nil
}

func (h *Host) SetFeaturedMedia(ctx context.Context, postID, mediaID int64) error {
	if err := h.posts.SetThumbnail(ctx, postID, mediaID); err != nil {
		return fmt.Errorf("set thumbnail %d on post %d: %w", mediaID, postID, err)
	}

	return nil
}

func (h *Host) Permalink(_ context.Context, postID int64) (string, error) {
	if h.cfg.SiteURL == "" {
		return "", errors.New("site url is not configured")
	}

	return fmt.Sprintf("%s/?p=%d", strings.TrimRight(h.cfg.SiteURL, "/"), postID), nil
}

func (h *Host) StoreUploadedFile(ctx context.Context, body io.Reader, size int64, filename,
	mimeType string,
) (entity.StoredFile, error) {
	name := utils.EnsureExtension(utils.SanitizeFilename(filename), mimeType)

	stored, err := h.uploader.UploadFile(ctx, body, size, name, mimeType)
	if err != nil {
		return entity.StoredFile{}, fmt.Errorf("store %s: %w", name, err)
	}

	return stored, nil
}

func (h *Host) RegisterAttachment(ctx context.Context, stored entity.StoredFile, mimeType string) (int64, error) {
	id, err := h.sequencer.NextID(ctx, ContentSequence)
	if err != nil {
		return 0, fmt.Errorf("allocate attachment id: %w", err)
	}

	err = h.attachments.InsertAttachment(ctx, &model.Attachment{
		ID:        id,
		Title:     path.Base(stored.ObjectKey),
		Bucket:    stored.Bucket,
		ObjectKey: stored.ObjectKey,
		MimeType:  mimeType,
		Size:      stored.Size,
		Status:    model.PostStatusInherit,
		ParentID:  0,
		CreatedAt: h.now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("insert attachment: %w", err)
	}

	return id, nil
}

// GenerateMetadata records file size, plus dimensions for images, and then
// announces the attachment for downstream processing such as thumbnailing.
func (h *Host) GenerateMetadata(ctx context.Context, attachmentID int64) error {
	attachment, err := h.attachRead.GetAttachmentByID(ctx, attachmentID)
	if err != nil {
		return fmt.Errorf("load attachment %d: %w", attachmentID, err)
	}

	metadata := &model.AttachmentMetadata{FileSize: attachment.Size}

	if strings.HasPrefix(attachment.MimeType, "image/") {
		width, height, err := h.dimensions(ctx, attachment)
		if err != nil {
			return fmt.Errorf("read dimensions of attachment %d: %w", attachmentID, err)
		}
		metadata.Width, metadata.Height = width, height
	}

	if err := h.attachments.UpdateMetadata(ctx, attachmentID, metadata); err != nil {
		return fmt.Errorf("persist metadata of attachment %d: %w", attachmentID, err)
	}

	// The attachment is complete at this point; a lost event only delays
	// derived sizes.
	if err := h.publisher.Publish(ctx, entity.AttachmentEvent{
		AttachmentID: attachment.ID,
		Bucket:       attachment.Bucket,
		ObjectKey:    attachment.ObjectKey,
		MimeType:     attachment.MimeType,
		Size:         attachment.Size,
	}); err != nil {
		logger.Warn("failed to publish attachment event", "attachment_id", attachmentID, "err", err)
	}

	return nil
}

func (h *Host) dimensions(ctx context.Context, attachment *model.Attachment) (int, int, error) {
	rc, err := h.reader.Open(ctx, attachment.Bucket, attachment.ObjectKey)
	if err != nil {
		return 0, 0, err
	}
	defer rc.Close()

	cfg, _, err := image.DecodeConfig(rc)
	if err != nil {
		return 0, 0, err
	}

	return cfg.Width, cfg.Height, nil
}

func (h *Host) PublicURL(ctx context.Context, attachmentID int64) (string, error) {
	attachment, err := h.attachRead.GetAttachmentByID(ctx, attachmentID)
	if err != nil {
		return "", fmt.Errorf("load attachment %d: %w", attachmentID, err)
	}

	u, err := url.JoinPath(h.cfg.MediaBaseURL, attachment.ObjectKey)
	if err != nil {
		return "", fmt.Errorf("build media url: %w", err)
	}

	return u, nil
}

func (h *Host) DiscardStoredFile(ctx context.Context, stored entity.StoredFile) error {
	return h.remover.Remove(ctx, stored)
}

func (h *Host) SiteTitle(ctx context.Context) (string, error) {
	title, err := h.options.GetOption(ctx, model.OptionSiteTitle)
	if errors.Is(err, database.ErrNotFound) {
		return h.cfg.DefaultTitle, nil
	}

	if err != nil {
		return "", fmt.Errorf("read site title: %w", err)
	}

	return title, nil
}
