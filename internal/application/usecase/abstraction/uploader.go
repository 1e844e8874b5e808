package abstraction

import (
	"context"

	"rodut/internal/domain/entity"
)

type Uploader interface {
	// UploadMedia stores file as a new attachment. A nil file means the
	// request carried no file part.
	UploadMedia(ctx context.Context, callerIP, apiKey string, file *entity.IncomingFile) (entity.UploadedMedia, error)
}
