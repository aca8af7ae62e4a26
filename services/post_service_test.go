package services

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"posts-lab/domain"
	"posts-lab/errors"
	"posts-lab/mocks"
)

func TestPostService_CreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPosts := mocks.NewMockIPostRepository(ctrl)
	mockComments := mocks.NewMockICommentRepository(ctrl)
	mockPublisher := mocks.NewMockIPostPublisher(ctrl)
	svc := NewPostService(mockPosts, mockComments, mockPublisher, slog.Default())

	t.Run("should persist and publish when input is valid", func(t *testing.T) {
		req := require.New(t)
		published := make(chan domain.PostSummary, 1)

		mockPosts.EXPECT().
			Save(gomock.Any()).
			Return(nil).
			Times(1)
		mockPublisher.EXPECT().
			Publish(gomock.Any()).
			DoAndReturn(func(post domain.PostSummary) error {
				published <- post
				return nil
			}).
			Times(1)

		post, err := svc.CreatePost("Hello", "World", "user-1")

		req.NoError(err)
		req.NotEqual(uuid.Nil, post.ID)
		req.Equal("Hello", post.Title)
		req.Equal("World", post.Content)
		req.Equal("user-1", post.UserRef)
		req.False(post.CreatedAt.IsZero())

		// Publication is fire-and-forget, wait for the goroutine.
		select {
		case event := <-published:
			req.Equal(post.ID, event.ID)
		case <-time.After(time.Second):
			t.Fatal("publish was never attempted")
		}
	})

	t.Run("should fail and persist nothing when title is empty", func(t *testing.T) {
		req := require.New(t)

		mockPosts.EXPECT().Save(gomock.Any()).Times(0)
		mockPublisher.EXPECT().Publish(gomock.Any()).Times(0)

		_, err := svc.CreatePost("", "content", "user-1")

		req.ErrorIs(err, errors.ErrEmptyTitle)
	})

	t.Run("should succeed even when the publisher drops the event", func(t *testing.T) {
		req := require.New(t)
		published := make(chan struct{})

		mockPosts.EXPECT().Save(gomock.Any()).Return(nil).Times(1)
		mockPublisher.EXPECT().
			Publish(gomock.Any()).
			DoAndReturn(func(domain.PostSummary) error {
				close(published)
				return errors.ErrPublisherUnavailable
			}).
			Times(1)

		post, err := svc.CreatePost("Hello", "World", "user-1")

		req.NoError(err)
		req.NotEqual(uuid.Nil, post.ID)
		select {
		case <-published:
		case <-time.After(time.Second):
			t.Fatal("publish was never attempted")
		}
	})

	t.Run("should fail without publishing when the repository fails", func(t *testing.T) {
		req := require.New(t)

		mockPosts.EXPECT().Save(gomock.Any()).Return(fmt.Errorf("disk full")).Times(1)
		mockPublisher.EXPECT().Publish(gomock.Any()).Times(0)

		_, err := svc.CreatePost("Hello", "World", "user-1")

		req.Error(err)
	})
}

func TestPostService_GetPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPosts := mocks.NewMockIPostRepository(ctrl)
	mockComments := mocks.NewMockICommentRepository(ctrl)
	mockPublisher := mocks.NewMockIPostPublisher(ctrl)
	svc := NewPostService(mockPosts, mockComments, mockPublisher, slog.Default())

	t.Run("should join the post with its comments in creation order", func(t *testing.T) {
		req := require.New(t)
		summary := domain.NewPostSummary("Hello", "World", "user-1")
		first := domain.NewComment(summary.ID, "first", "user-2")
		second := domain.NewComment(summary.ID, "second", "user-3")

		mockPosts.EXPECT().Get(summary.ID).Return(summary, true, nil).Times(1)
		mockComments.EXPECT().GetByPostID(summary.ID).Return([]domain.Comment{first, second}, nil).Times(1)

		post, err := svc.GetPost(summary.ID)

		req.NoError(err)
		req.Equal(summary, post.PostSummary)
		req.Len(post.Comments, 2)
		req.Equal("first", post.Comments[0].Text)
		req.Equal("second", post.Comments[1].Text)
	})

	t.Run("should return not found for an unknown id", func(t *testing.T) {
		req := require.New(t)
		id := uuid.New()

		mockPosts.EXPECT().Get(id).Return(domain.PostSummary{}, false, nil).Times(1)

		_, err := svc.GetPost(id)

		req.ErrorIs(err, errors.ErrPostNotFound)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPosts := mocks.NewMockIPostRepository(ctrl)
	mockComments := mocks.NewMockICommentRepository(ctrl)
	mockPublisher := mocks.NewMockIPostPublisher(ctrl)
	svc := NewPostService(mockPosts, mockComments, mockPublisher, slog.Default())

	t.Run("should rewrite title, content and timestamp for the owner", func(t *testing.T) {
		req := require.New(t)
		existing := domain.NewPostSummary("Hello", "World", "user-1")

		mockPosts.EXPECT().Get(existing.ID).Return(existing, true, nil).Times(1)
		mockPosts.EXPECT().
			Update(gomock.Any()).
			DoAndReturn(func(post domain.PostSummary) error {
				req.Equal(existing.ID, post.ID)
				req.Equal("user-1", post.UserRef)
				req.Equal("New", post.Title)
				req.Equal("Body", post.Content)
				return nil
			}).
			Times(1)

		updated, err := svc.UpdatePost(existing.ID, "New", "Body", "user-1")

		req.NoError(err)
		req.Equal("New", updated.Title)
	})

	t.Run("should reject a caller who is not the owner", func(t *testing.T) {
		req := require.New(t)
		existing := domain.NewPostSummary("Hello", "World", "user-1")

		mockPosts.EXPECT().Get(existing.ID).Return(existing, true, nil).Times(1)
		mockPosts.EXPECT().Update(gomock.Any()).Times(0)

		_, err := svc.UpdatePost(existing.ID, "New", "Body", "user-2")

		req.ErrorIs(err, errors.ErrNotPostOwner)
	})

	t.Run("should return not found for an unknown id", func(t *testing.T) {
		req := require.New(t)
		id := uuid.New()

		mockPosts.EXPECT().Get(id).Return(domain.PostSummary{}, false, nil).Times(1)

		_, err := svc.UpdatePost(id, "New", "Body", "user-1")

		req.ErrorIs(err, errors.ErrPostNotFound)
	})

	t.Run("should reject an empty title before any lookup", func(t *testing.T) {
		req := require.New(t)

		mockPosts.EXPECT().Get(gomock.Any()).Times(0)

		_, err := svc.UpdatePost(uuid.New(), "   ", "Body", "user-1")

		req.ErrorIs(err, errors.ErrEmptyTitle)
	})
}

func TestPostService_RemovePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPosts := mocks.NewMockIPostRepository(ctrl)
	mockComments := mocks.NewMockICommentRepository(ctrl)
	mockPublisher := mocks.NewMockIPostPublisher(ctrl)
	svc := NewPostService(mockPosts, mockComments, mockPublisher, slog.Default())

	t.Run("should delete when the caller owns the post", func(t *testing.T) {
		req := require.New(t)
		existing := domain.NewPostSummary("Hello", "World", "user-1")

		mockPosts.EXPECT().Get(existing.ID).Return(existing, true, nil).Times(1)
		mockPosts.EXPECT().Delete(existing.ID).Return(nil).Times(1)

		req.NoError(svc.RemovePost(existing.ID, "user-1"))
	})

	t.Run("should reject a caller who is not the owner", func(t *testing.T) {
		req := require.New(t)
		existing := domain.NewPostSummary("Hello", "World", "user-1")

		mockPosts.EXPECT().Get(existing.ID).Return(existing, true, nil).Times(1)
		mockPosts.EXPECT().Delete(gomock.Any()).Times(0)

		req.ErrorIs(svc.RemovePost(existing.ID, "user-2"), errors.ErrNotPostOwner)
	})

	t.Run("should return not found for an unknown id", func(t *testing.T) {
		req := require.New(t)
		id := uuid.New()

		mockPosts.EXPECT().Get(id).Return(domain.PostSummary{}, false, nil).Times(1)

		req.ErrorIs(svc.RemovePost(id, "user-1"), errors.ErrPostNotFound)
	})
}
