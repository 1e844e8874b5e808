package handler

import (
	"errors"
	"net/http"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"rodut/internal/application/guard"
	"rodut/internal/application/usecase/abstraction"
	"rodut/internal/domain/dto"
	"rodut/internal/domain/ingest"
)

const postCreatedMessage = "Post created successfully"

type PostHandler struct {
	poster abstraction.Poster
}

func NewPostHandler(poster abstraction.Poster) *PostHandler {
	return &PostHandler{
		poster: poster,
	}
}

// HandleCreatePost handles POST /rodut/v1/create-post.
func (h *PostHandler) HandleCreatePost(c echo.Context) error {
	var req dto.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
			return respondError(c, ingest.Wrap(ingest.PayloadTooLarge, ingest.MsgBodyTooLarge, err))
		}

		// An unreadable body carries no key, so it is judged as an empty request.
		logger.Debug("create-post body could not be bound", "err", err)
		req = dto.CreatePostRequest{}
	}

	post, err := h.poster.CreatePost(c.Request().Context(), guard.ClientIP(c.Request()), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CreatePostResponse{
		Message: postCreatedMessage,
		PostID:  post.ID,
		PostURL: post.URL,
	})
}
