package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment is immutable once created and always belongs to an existing
// post. The existence check happens in the comment service, before
// construction, so no orphan comment is ever built.
type Comment struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	Text      string
	CreatedAt time.Time
	AuthorRef string
}

// NewComment builds a comment on postID written by authorRef.
func NewComment(postID uuid.UUID, text, authorRef string) Comment {
	return Comment{
		ID:        uuid.New(),
		PostID:    postID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
		AuthorRef: authorRef,
	}
}
