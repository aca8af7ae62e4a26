// Package domain contains the core concepts of the posts system.
// Entities are plain data holders; business rules live in the services.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// PostSummary is the persisted post aggregate: the post metadata
// without its comments. The ID is generated at construction and never
// reassigned afterwards.
type PostSummary struct {
	ID        uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
	UserRef   string
}

// NewPostSummary builds a post owned by userRef with a fresh identifier
// and the current UTC time.
func NewPostSummary(title, content, userRef string) PostSummary {
	return PostSummary{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		UserRef:   userRef,
	}
}

// Post is a read projection: a PostSummary joined with its comments,
// ordered by creation time. It is materialized on demand and never
// stored as its own aggregate.
type Post struct {
	PostSummary
	Comments []Comment
}
