package server

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"posts-lab/mocks"
	pb "posts-lab/proto/statistics"
)

func TestStatisticsServer_CountComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStatistics := mocks.NewMockIStatisticsService(ctrl)
	srv := NewStatisticsServer(mockStatistics, slog.Default())

	t.Run("should return the count for a valid id", func(t *testing.T) {
		req := require.New(t)
		postID := uuid.New()

		mockStatistics.EXPECT().CountComments(postID).Return(3, nil).Times(1)

		resp, err := srv.CountComments(context.Background(), &pb.CountCommentsRequest{PostId: postID.String()})

		req.NoError(err)
		req.EqualValues(3, resp.GetCount())
	})

	t.Run("should reject a malformed id", func(t *testing.T) {
		req := require.New(t)

		_, err := srv.CountComments(context.Background(), &pb.CountCommentsRequest{PostId: "not-a-uuid"})

		req.Equal(codes.InvalidArgument, status.Code(err))
	})

	t.Run("should hide storage failures behind Internal", func(t *testing.T) {
		req := require.New(t)
		postID := uuid.New()

		mockStatistics.EXPECT().CountComments(postID).Return(0, fmt.Errorf("disk failure")).Times(1)

		_, err := srv.CountComments(context.Background(), &pb.CountCommentsRequest{PostId: postID.String()})

		req.Equal(codes.Internal, status.Code(err))
	})
}

func TestStatisticsServer_ListPostIds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStatistics := mocks.NewMockIStatisticsService(ctrl)
	srv := NewStatisticsServer(mockStatistics, slog.Default())

	t.Run("should return ids as strings", func(t *testing.T) {
		req := require.New(t)
		ids := []string{uuid.NewString(), uuid.NewString()}

		mockStatistics.EXPECT().ListPostIds().Return(ids, nil).Times(1)

		resp, err := srv.ListPostIds(context.Background(), &pb.ListPostIdsRequest{})

		req.NoError(err)
		req.Equal(ids, resp.GetPostId())
	})
}
