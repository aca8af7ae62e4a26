package services

import (
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"posts-lab/domain"
	"posts-lab/errors"
	"posts-lab/mocks"
)

func TestCommentService_AddComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPosts := mocks.NewMockIPostRepository(ctrl)
	mockComments := mocks.NewMockICommentRepository(ctrl)
	svc := NewCommentService(mockPosts, mockComments, slog.Default())

	t.Run("should attach the comment to an existing post", func(t *testing.T) {
		req := require.New(t)
		post := domain.NewPostSummary("Hello", "World", "user-1")

		mockPosts.EXPECT().Get(post.ID).Return(post, true, nil).Times(1)
		mockComments.EXPECT().
			Save(gomock.Any(), post.ID).
			DoAndReturn(func(comment domain.Comment, postID uuid.UUID) error {
				req.Equal(post.ID, comment.PostID)
				req.Equal("nice post", comment.Text)
				req.Equal("user-2", comment.AuthorRef)
				return nil
			}).
			Times(1)

		// Commenting is open, user-2 is not the owner.
		comment, err := svc.AddComment(post.ID, "nice post", "user-2")

		req.NoError(err)
		req.NotEqual(uuid.Nil, comment.ID)
	})

	t.Run("should refuse an orphan comment on a missing post", func(t *testing.T) {
		req := require.New(t)
		postID := uuid.New()

		mockPosts.EXPECT().Get(postID).Return(domain.PostSummary{}, false, nil).Times(1)
		mockComments.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.AddComment(postID, "orphan", "user-2")

		req.ErrorIs(err, errors.ErrPostNotFound)
	})

	t.Run("should reject empty text before any lookup", func(t *testing.T) {
		req := require.New(t)

		mockPosts.EXPECT().Get(gomock.Any()).Times(0)

		_, err := svc.AddComment(uuid.New(), "  ", "user-2")

		req.ErrorIs(err, errors.ErrEmptyText)
	})
}
