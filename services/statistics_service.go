//go:generate go run go.uber.org/mock/mockgen -source=statistics_service.go -destination=../mocks/mock_statistics_service.go -package=mocks
package services

import (
	"github.com/google/uuid"
	"github.com/samber/lo"

	"posts-lab/domain"
	"posts-lab/repositories"
)

// IStatisticsService is the read-only aggregate surface exposed over
// RPC. It reads through the repositories only and shares the domain
// state with the CRUD path.
type IStatisticsService interface {
	CountComments(postID uuid.UUID) (int, error)
	ListPostIds() ([]string, error)
}

type StatisticsService struct {
	postRepository    repositories.IPostRepository
	commentRepository repositories.ICommentRepository
}

func NewStatisticsService(
	postRepository repositories.IPostRepository,
	commentRepository repositories.ICommentRepository,
) *StatisticsService {
	return &StatisticsService{
		postRepository:    postRepository,
		commentRepository: commentRepository,
	}
}

// CountComments returns the comment count of a post. A post with no
// comments and an absent post both count as zero: this read path does
// not distinguish the two.
func (s *StatisticsService) CountComments(postID uuid.UUID) (int, error) {
	comments, err := s.commentRepository.GetByPostID(postID)
	if err != nil {
		return 0, err
	}
	return len(comments), nil
}

// ListPostIds returns the ids of all posts in repository iteration
// order, stable within one read.
func (s *StatisticsService) ListPostIds() ([]string, error) {
	posts, err := s.postRepository.GetAll()
	if err != nil {
		return nil, err
	}
	return lo.Map(posts, func(post domain.PostSummary, _ int) string {
		return post.ID.String()
	}), nil
}
