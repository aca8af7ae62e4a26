package server

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "posts-lab/proto/statistics"
	"posts-lab/services"
)

// StatisticsServer adapts IStatisticsService to the gRPC surface.
// The statistics read path is public: no credential is required.
type StatisticsServer struct {
	pb.UnimplementedStatisticsServiceServer
	statistics services.IStatisticsService
	log        *slog.Logger
}

func NewStatisticsServer(statistics services.IStatisticsService, log *slog.Logger) *StatisticsServer {
	return &StatisticsServer{statistics: statistics, log: log}
}

func (s *StatisticsServer) CountComments(_ context.Context, req *pb.CountCommentsRequest) (*pb.CountCommentsResponse, error) {
	postID, err := uuid.Parse(req.GetPostId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "post_id must be a UUID")
	}

	count, err := s.statistics.CountComments(postID)
	if err != nil {
		s.log.Error("CountComments failed", "post", postID, "error", err)
		return nil, status.Error(codes.Internal, "statistics unavailable")
	}

	return &pb.CountCommentsResponse{Count: int64(count)}, nil
}

func (s *StatisticsServer) ListPostIds(_ context.Context, _ *pb.ListPostIdsRequest) (*pb.ListPostIdsResponse, error) {
	ids, err := s.statistics.ListPostIds()
	if err != nil {
		s.log.Error("ListPostIds failed", "error", err)
		return nil, status.Error(codes.Internal, "statistics unavailable")
	}

	return &pb.ListPostIdsResponse{PostId: ids}, nil
}
