package abstraction

import (
	"context"

	"rodut/internal/domain/dto"
	"rodut/internal/domain/entity"
)

type Poster interface {
	CreatePost(ctx context.Context, callerIP string, req dto.CreatePostRequest) (entity.CreatedPost, error)
}
