// Package event holds the outbound domain events and their wire shape.
package event

import (
	"time"

	"github.com/google/uuid"

	"posts-lab/domain"
)

// PostPublishedEvent is the JSON projection of a created post sent to
// the messaging channel. Consumers must be idempotent on Id: the
// channel is at-least-once and duplicates are possible.
type PostPublishedEvent struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
	UserRef string    `json:"userRef"`
}

// FromPostSummary projects a post into its published event.
func FromPostSummary(post domain.PostSummary) PostPublishedEvent {
	return PostPublishedEvent{
		ID:      post.ID,
		Title:   post.Title,
		Content: post.Content,
		Date:    post.CreatedAt,
		UserRef: post.UserRef,
	}
}
