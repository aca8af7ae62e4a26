//go:generate go run go.uber.org/mock/mockgen -source=post_service.go -destination=../mocks/mock_post_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"posts-lab/domain"
	"posts-lab/errors"
	"posts-lab/publishers"
	"posts-lab/repositories"
)

type IPostService interface {
	CreatePost(title, content, userRef string) (domain.PostSummary, error)
	FindAllPosts() ([]domain.PostSummary, error)
	GetPost(id uuid.UUID) (domain.Post, error)
	UpdatePost(id uuid.UUID, title, content, userRef string) (domain.PostSummary, error)
	RemovePost(id uuid.UUID, userRef string) error
}

type PostService struct {
	postRepository    repositories.IPostRepository
	commentRepository repositories.ICommentRepository
	publisher         publishers.IPostPublisher
	log               *slog.Logger
}

func NewPostService(
	postRepository repositories.IPostRepository,
	commentRepository repositories.ICommentRepository,
	publisher publishers.IPostPublisher,
	log *slog.Logger,
) *PostService {
	return &PostService{
		postRepository:    postRepository,
		commentRepository: commentRepository,
		publisher:         publisher,
		log:               log,
	}
}

// CreatePost persists a new post owned by userRef and then publishes
// the created event in the background. Persistence happens before the
// publish attempt; a publish failure is logged and never propagated,
// the create has already succeeded.
func (s *PostService) CreatePost(title, content, userRef string) (domain.PostSummary, error) {
	if strings.TrimSpace(title) == "" {
		return domain.PostSummary{}, errors.ErrEmptyTitle
	}

	post := domain.NewPostSummary(title, content, userRef)
	if err := s.postRepository.Save(post); err != nil {
		return domain.PostSummary{}, fmt.Errorf("saving post: %w", err)
	}
	s.log.Info("Post created", "id", post.ID, "user", userRef)

	go func() {
		if err := s.publisher.Publish(post); err != nil {
			s.log.Warn("Post event lost", "id", post.ID, "error", err)
		}
	}()

	return post, nil
}

func (s *PostService) FindAllPosts() ([]domain.PostSummary, error) {
	return s.postRepository.GetAll()
}

// GetPost joins the post with its comments, ordered by creation time.
func (s *PostService) GetPost(id uuid.UUID) (domain.Post, error) {
	summary, ok, err := s.postRepository.Get(id)
	if err != nil {
		return domain.Post{}, fmt.Errorf("loading post: %w", err)
	}
	if !ok {
		return domain.Post{}, errors.ErrPostNotFound
	}

	comments, err := s.commentRepository.GetByPostID(id)
	if err != nil {
		return domain.Post{}, fmt.Errorf("loading comments: %w", err)
	}

	return domain.Post{PostSummary: summary, Comments: comments}, nil
}

// UpdatePost rewrites title, content and timestamp of an existing
// post. Only the owner may update; id and owner never change.
func (s *PostService) UpdatePost(id uuid.UUID, title, content, userRef string) (domain.PostSummary, error) {
	if strings.TrimSpace(title) == "" {
		return domain.PostSummary{}, errors.ErrEmptyTitle
	}

	post, ok, err := s.postRepository.Get(id)
	if err != nil {
		return domain.PostSummary{}, fmt.Errorf("loading post: %w", err)
	}
	if !ok {
		return domain.PostSummary{}, errors.ErrPostNotFound
	}
	if post.UserRef != userRef {
		s.log.Warn("Update rejected, caller is not the owner", "id", id, "caller", userRef)
		return domain.PostSummary{}, errors.ErrNotPostOwner
	}

	post.Title = title
	post.Content = content
	post.CreatedAt = time.Now().UTC()
	if err := s.postRepository.Update(post); err != nil {
		return domain.PostSummary{}, fmt.Errorf("updating post: %w", err)
	}
	s.log.Info("Post updated", "id", id)
	return post, nil
}

// RemovePost deletes a post after the same ownership check as
// UpdatePost. Stored comments go with the post.
func (s *PostService) RemovePost(id uuid.UUID, userRef string) error {
	post, ok, err := s.postRepository.Get(id)
	if err != nil {
		return fmt.Errorf("loading post: %w", err)
	}
	if !ok {
		return errors.ErrPostNotFound
	}
	if post.UserRef != userRef {
		s.log.Warn("Removal rejected, caller is not the owner", "id", id, "caller", userRef)
		return errors.ErrNotPostOwner
	}

	if err := s.postRepository.Delete(id); err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}
	s.log.Info("Post removed", "id", id)
	return nil
}
