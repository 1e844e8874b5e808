package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/dezh-tech/immortal/pkg/logger"

	"rodut/internal/application/usecase/abstraction"
	"rodut/internal/domain/dto"
	"rodut/internal/domain/entity"
	"rodut/internal/domain/ingest"
	"rodut/internal/domain/repository/contenthost"
	"rodut/internal/domain/repository/database"
)

// Poster publishes posts on behalf of the designated author.
type Poster struct {
	admitter abstraction.Admitter
	host     contenthost.Host

	mu       sync.Mutex
	authorID int64
}

// NewPoster creates a Poster. A non-zero authorID pins the author; otherwise
// the first administrator is looked up on first use and remembered.
func NewPoster(admitter abstraction.Admitter, host contenthost.Host, authorID int64) *Poster {
	return &Poster{
		admitter: admitter,
		host:     host,
		authorID: authorID,
	}
}

func (p *Poster) CreatePost(ctx context.Context, callerIP string, req dto.CreatePostRequest,
) (entity.CreatedPost, error) {
	if err := p.admitter.Admit(callerIP, req.APIKey); err != nil {
		return entity.CreatedPost{}, err
	}

	if req.Content == "" {
		return entity.CreatedPost{}, ingest.New(ingest.EmptyContent, ingest.MsgEmptyContent)
	}

	author, err := p.author(ctx)
	if err != nil {
		return entity.CreatedPost{}, err
	}

	postID, err := p.host.CreatePublishedPost(ctx, req.Title, req.Content, author)
	if err != nil {
		logger.Error("failed to create post", "author_id", author, "err", err)

		return entity.CreatedPost{}, ingest.Wrap(ingest.HostError, ingest.MsgCreatePostFailed, err)
	}

	// The post exists from here on; later failures are reported but not undone.
	if media := req.FeaturedMediaID(); media != 0 {
		if err := p.host.SetFeaturedMedia(ctx, postID, media); err != nil {
			logger.Error("failed to set featured media", "post_id", postID, "media_id", media, "err", err)

			return entity.CreatedPost{}, ingest.Wrap(ingest.HostError, ingest.MsgFeaturedFailed, err)
		}
	}

	link, err := p.host.Permalink(ctx, postID)
	if err != nil {
		logger.Error("failed to resolve permalink", "post_id", postID, "err", err)

		return entity.CreatedPost{}, ingest.Wrap(ingest.HostError, ingest.MsgCreatePostFailed, err)
	}

	logger.Info("post created", "post_id", postID, "author_id", author)

	return entity.CreatedPost{ID: postID, URL: link}, nil
}

func (p *Poster) author(ctx context.Context) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.authorID != 0 {
		return p.authorID, nil
	}

	id, err := p.host.FirstAdministrator(ctx)
	if errors.Is(err, database.ErrNotFound) {
		return 0, ingest.New(ingest.NotFound, ingest.MsgNoAdministrator)
	}

	if err != nil {
		logger.Error("failed to look up administrator", "err", err)

		return 0, ingest.Wrap(ingest.HostError, ingest.MsgCreatePostFailed, err)
	}

	p.authorID = id

	return id, nil
}
