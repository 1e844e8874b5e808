package usecase

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"rodut/internal/domain/entity"
)

type mockHost struct {
	mock.Mock
}

func (m *mockHost) FirstAdministrator(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockHost) CreatePublishedPost(ctx context.Context, title, content string, authorID int64) (int64, error) {
	args := m.Called(ctx, title, content, authorID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockHost) SetFeaturedMedia(ctx context.Context, postID, mediaID int64) error {
	return m.Called(ctx, postID, mediaID).Error(0)
}

func (m *mockHost) Permalink(ctx context.Context, postID int64) (string, error) {
	args := m.Called(ctx, postID)

	return args.String(0), args.Error(1)
}

func (m *mockHost) StoreUploadedFile(ctx context.Context, body io.Reader, size int64, filename,
	mimeType string,
) (entity.StoredFile, error) {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return entity.StoredFile{}, err
	}
	args := m.Called(ctx, size, filename, mimeType)

	return args.Get(0).(entity.StoredFile), args.Error(1)
}

func (m *mockHost) RegisterAttachment(ctx context.Context, stored entity.StoredFile, mimeType string) (int64, error) {
	args := m.Called(ctx, stored, mimeType)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockHost) GenerateMetadata(ctx context.Context, attachmentID int64) error {
	return m.Called(ctx, attachmentID).Error(0)
}

func (m *mockHost) PublicURL(ctx context.Context, attachmentID int64) (string, error) {
	args := m.Called(ctx, attachmentID)

	return args.String(0), args.Error(1)
}

func (m *mockHost) DiscardStoredFile(ctx context.Context, stored entity.StoredFile) error {
	return m.Called(ctx, stored).Error(0)
}

func (m *mockHost) SiteTitle(ctx context.Context) (string, error) {
	args := m.Called(ctx)

	return args.String(0), args.Error(1)
}

type fakeCounter struct {
	total int64
}

func (f *fakeCounter) RecordUploadedBytes(n int64) { f.total += n }
