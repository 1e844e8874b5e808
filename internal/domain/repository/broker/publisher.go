package broker

import (
	"context"

	"rodut/internal/domain/entity"
)

// Publisher announces registered attachments to downstream processors.
type Publisher interface {
	Publish(ctx context.Context, event entity.AttachmentEvent) error
}
