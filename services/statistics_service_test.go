package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"posts-lab/domain"
	"posts-lab/mocks"
)

func TestStatisticsService_CountComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPosts := mocks.NewMockIPostRepository(ctrl)
	mockComments := mocks.NewMockICommentRepository(ctrl)
	svc := NewStatisticsService(mockPosts, mockComments)

	t.Run("should count the comments of a post", func(t *testing.T) {
		req := require.New(t)
		postID := uuid.New()

		mockComments.EXPECT().GetByPostID(postID).Return([]domain.Comment{
			domain.NewComment(postID, "first", "user-2"),
			domain.NewComment(postID, "second", "user-3"),
		}, nil).Times(1)

		count, err := svc.CountComments(postID)

		req.NoError(err)
		req.Equal(2, count)
	})

	t.Run("should report zero for an unknown post", func(t *testing.T) {
		req := require.New(t)
		postID := uuid.New()

		// An absent post and a comment-less post are indistinguishable
		// on this read path.
		mockComments.EXPECT().GetByPostID(postID).Return(nil, nil).Times(1)

		count, err := svc.CountComments(postID)

		req.NoError(err)
		req.Zero(count)
	})
}

func TestStatisticsService_ListPostIds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPosts := mocks.NewMockIPostRepository(ctrl)
	mockComments := mocks.NewMockICommentRepository(ctrl)
	svc := NewStatisticsService(mockPosts, mockComments)

	t.Run("should stringify ids in repository order", func(t *testing.T) {
		req := require.New(t)
		first := domain.NewPostSummary("Hello", "World", "user-1")
		second := domain.NewPostSummary("Bye", "World", "user-1")

		mockPosts.EXPECT().GetAll().Return([]domain.PostSummary{first, second}, nil).Times(1)

		ids, err := svc.ListPostIds()

		req.NoError(err)
		req.Equal([]string{first.ID.String(), second.ID.String()}, ids)
	})

	t.Run("should return an empty list when there are no posts", func(t *testing.T) {
		req := require.New(t)

		mockPosts.EXPECT().GetAll().Return(nil, nil).Times(1)

		ids, err := svc.ListPostIds()

		req.NoError(err)
		req.Empty(ids)
	})
}
