package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rodut/internal/domain/dto"
	"rodut/internal/domain/ingest"
	"rodut/internal/domain/repository/database"
)

func TestCreatePostRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ip   string
		req  dto.CreatePostRequest
		want ingest.Kind
	}{
		{
			name: "foreign caller with valid key",
			ip:   foreignIP,
			req:  dto.CreatePostRequest{APIKey: apiKey, Content: "c"},
			want: ingest.AccessDenied,
		},
		{
			name: "foreign caller with empty content",
			ip:   foreignIP,
			req:  dto.CreatePostRequest{APIKey: "wrong"},
			want: ingest.AccessDenied,
		},
		{
			name: "wrong key",
			ip:   allowedIP,
			req:  dto.CreatePostRequest{APIKey: "wrong", Content: "c"},
			want: ingest.InvalidCredential,
		},
		{
			name: "missing key",
			ip:   allowedIP,
			req:  dto.CreatePostRequest{Content: "c"},
			want: ingest.InvalidCredential,
		},
		{
			name: "empty content",
			ip:   allowedIP,
			req:  dto.CreatePostRequest{APIKey: apiKey, Title: "only a title"},
			want: ingest.EmptyContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			host := &mockHost{}
			p := NewPoster(newTestGuard(t), host, 0)

			_, err := p.CreatePost(context.Background(), tt.ip, tt.req)
			assert.Equal(t, tt.want, kindOf(t, err))
			host.AssertNotCalled(t, "CreatePublishedPost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreatePostSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	host := &mockHost{}
	host.On("FirstAdministrator", ctx).Return(int64(1), nil).Once()
	host.On("CreatePublishedPost", ctx, "", "body", int64(1)).Return(int64(10), nil).Once()
	host.On("SetFeaturedMedia", ctx, int64(10), int64(5)).Return(nil).Once()
	host.On("Permalink", ctx, int64(10)).Return("https://blog.example.com/?p=10", nil).Once()

	p := NewPoster(newTestGuard(t), host, 0)
	post, err := p.CreatePost(ctx, allowedIP, dto.CreatePostRequest{APIKey: apiKey, Content: "body", FeaturedMedia: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(10), post.ID)
	assert.Equal(t, "https://blog.example.com/?p=10", post.URL)
	host.AssertExpectations(t)
}

func TestCreatePostZeroFeaturedMedia(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	host := &mockHost{}
	host.On("CreatePublishedPost", ctx, "t", "c", int64(9)).Return(int64(11), nil).Once()
	host.On("Permalink", ctx, int64(11)).Return("u", nil).Once()

	p := NewPoster(newTestGuard(t), host, 9)
	_, err := p.CreatePost(ctx, allowedIP, dto.CreatePostRequest{APIKey: apiKey, Title: "t", Content: "c", FeaturedMedia: 0})
	require.NoError(t, err)
	host.AssertNotCalled(t, "SetFeaturedMedia", mock.Anything, mock.Anything, mock.Anything)
	host.AssertNotCalled(t, "FirstAdministrator", mock.Anything)
}

func TestCreatePostNoAdministrator(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	host := &mockHost{}
	host.On("FirstAdministrator", ctx).Return(int64(0), database.ErrNotFound).Once()

	p := NewPoster(newTestGuard(t), host, 0)
	_, err := p.CreatePost(ctx, allowedIP, dto.CreatePostRequest{APIKey: apiKey, Content: "c"})
	assert.Equal(t, ingest.NotFound, kindOf(t, err))
	assert.Equal(t, ingest.MsgNoAdministrator, ingest.As(err).Message)

	// The lookup is retried once an administrator exists.
	host.On("FirstAdministrator", ctx).Return(int64(2), nil).Once()
	host.On("CreatePublishedPost", ctx, "", "c", int64(2)).Return(int64(3), nil)
	host.On("Permalink", ctx, int64(3)).Return("u", nil)

	_, err = p.CreatePost(ctx, allowedIP, dto.CreatePostRequest{APIKey: apiKey, Content: "c"})
	require.NoError(t, err)
	host.AssertExpectations(t)
}

func TestCreatePostAuthorIsCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	host := &mockHost{}
	host.On("FirstAdministrator", ctx).Return(int64(1), nil).Once()
	host.On("CreatePublishedPost", ctx, mock.Anything, mock.Anything, int64(1)).Return(int64(20), nil)
	host.On("Permalink", ctx, int64(20)).Return("u", nil)

	p := NewPoster(newTestGuard(t), host, 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := p.CreatePost(ctx, allowedIP, dto.CreatePostRequest{APIKey: apiKey, Content: fmt.Sprint(i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	host.AssertNumberOfCalls(t, "FirstAdministrator", 1)
}

func TestCreatePostHostFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("connection reset")

	t.Run("create fails", func(t *testing.T) {
		t.Parallel()

		host := &mockHost{}
		host.On("CreatePublishedPost", ctx, "", "c", int64(1)).Return(int64(0), boom)

		_, err := NewPoster(newTestGuard(t), host, 1).
			CreatePost(ctx, allowedIP, dto.CreatePostRequest{APIKey: apiKey, Content: "c"})
		assert.Equal(t, ingest.HostError, kindOf(t, err))
		assert.Equal(t, ingest.MsgCreatePostFailed, ingest.As(err).Message)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("thumbnail fails after the post exists", func(t *testing.T) {
		t.Parallel()

		host := &mockHost{}
		host.On("CreatePublishedPost", ctx, "", "c", int64(1)).Return(int64(4), nil).Once()
		host.On("SetFeaturedMedia", ctx, int64(4), int64(99)).Return(boom)

		_, err := NewPoster(newTestGuard(t), host, 1).
			CreatePost(ctx, allowedIP, dto.CreatePostRequest{APIKey: apiKey, Content: "c", FeaturedMedia: 99})
		assert.Equal(t, ingest.HostError, kindOf(t, err))
		host.AssertExpectations(t)
		host.AssertNotCalled(t, "Permalink", mock.Anything, mock.Anything)
	})

	t.Run("administrator lookup fails", func(t *testing.T) {
		t.Parallel()

		host := &mockHost{}
		host.On("FirstAdministrator", ctx).Return(int64(0), boom)

		_, err := NewPoster(newTestGuard(t), host, 0).
			CreatePost(ctx, allowedIP, dto.CreatePostRequest{APIKey: apiKey, Content: "c"})
		assert.Equal(t, ingest.HostError, kindOf(t, err))
	})
}
