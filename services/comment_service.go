//go:generate go run go.uber.org/mock/mockgen -source=comment_service.go -destination=../mocks/mock_comment_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"posts-lab/domain"
	"posts-lab/errors"
	"posts-lab/repositories"
)

type ICommentService interface {
	AddComment(postID uuid.UUID, text, authorRef string) (domain.Comment, error)
	GetCommentsByPostID(postID uuid.UUID) ([]domain.Comment, error)
}

type CommentService struct {
	postRepository    repositories.IPostRepository
	commentRepository repositories.ICommentRepository
	log               *slog.Logger
}

func NewCommentService(
	postRepository repositories.IPostRepository,
	commentRepository repositories.ICommentRepository,
	log *slog.Logger,
) *CommentService {
	return &CommentService{
		postRepository:    postRepository,
		commentRepository: commentRepository,
		log:               log,
	}
}

// AddComment creates a comment on an existing post. The post lookup
// happens before the comment is built, so an orphan comment can never
// be persisted. Commenting is open: the author does not have to be
// the post owner.
func (s *CommentService) AddComment(postID uuid.UUID, text, authorRef string) (domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Comment{}, errors.ErrEmptyText
	}

	_, ok, err := s.postRepository.Get(postID)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("loading post: %w", err)
	}
	if !ok {
		return domain.Comment{}, errors.ErrPostNotFound
	}

	comment := domain.NewComment(postID, text, authorRef)
	if err := s.commentRepository.Save(comment, postID); err != nil {
		return domain.Comment{}, fmt.Errorf("saving comment: %w", err)
	}
	s.log.Info("Comment added", "id", comment.ID, "post", postID, "author", authorRef)
	return comment, nil
}

// GetCommentsByPostID returns the comments of a post ordered by
// creation time.
func (s *CommentService) GetCommentsByPostID(postID uuid.UUID) ([]domain.Comment, error) {
	return s.commentRepository.GetByPostID(postID)
}
