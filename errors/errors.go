package errors

import "fmt"

var (
	ErrEmptyTitle           = fmt.Errorf("post title must not be empty")
	ErrEmptyText            = fmt.Errorf("comment text must not be empty")
	ErrPostNotFound         = fmt.Errorf("post not found")
	ErrCommentNotFound      = fmt.Errorf("comment not found")
	ErrNotPostOwner         = fmt.Errorf("caller is not the post owner")
	ErrUnauthenticated      = fmt.Errorf("missing or invalid credentials")
	ErrPublisherUnavailable = fmt.Errorf("event publisher unavailable")
)
