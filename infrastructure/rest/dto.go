package rest

import (
	"time"

	"posts-lab/domain"
)

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type UpdatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type PostResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UserRef   string    `json:"userRef"`
}

type PostDetailResponse struct {
	PostResponse
	Comments []CommentResponse `json:"comments"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	AuthorRef string    `json:"authorRef"`
}

func toPostResponse(post domain.PostSummary) PostResponse {
	return PostResponse{
		ID:        post.ID.String(),
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		UserRef:   post.UserRef,
	}
}

func toPostDetailResponse(post domain.Post) PostDetailResponse {
	comments := make([]CommentResponse, 0, len(post.Comments))
	for _, comment := range post.Comments {
		comments = append(comments, toCommentResponse(comment))
	}
	return PostDetailResponse{
		PostResponse: toPostResponse(post.PostSummary),
		Comments:     comments,
	}
}

func toCommentResponse(comment domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID.String(),
		PostID:    comment.PostID.String(),
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
		AuthorRef: comment.AuthorRef,
	}
}
