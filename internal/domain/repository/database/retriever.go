package database

import (
	"context"
	"errors"

	"rodut/internal/domain/model"
)

// ErrNotFound is returned by retrievers when no document matches.
var ErrNotFound = errors.New("document not found")

type UserRetriever interface {
	// FirstAdministrator returns the administrator with the lowest id.
	FirstAdministrator(ctx context.Context) (*model.User, error)
}

type AttachmentRetriever interface {
	GetAttachmentByID(ctx context.Context, id int64) (*model.Attachment, error)
}

type OptionRetriever interface {
	GetOption(ctx context.Context, name string) (string, error)
}
