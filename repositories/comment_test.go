package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"posts-lab/domain"
)

func TestCommentRepository_SaveAndGetByPostID(t *testing.T) {
	req := require.New(t)
	db := openDB(t)
	repository := NewCommentRepository(db, slog.Default())

	postID := uuid.New()
	at := time.Now().UTC()
	// Inserted out of order on purpose, expecting chronological reads.
	second := domain.Comment{ID: uuid.New(), PostID: postID, Text: "second", CreatedAt: at.Add(time.Minute), AuthorRef: "user-3"}
	first := domain.Comment{ID: uuid.New(), PostID: postID, Text: "first", CreatedAt: at, AuthorRef: "user-2"}
	third := domain.Comment{ID: uuid.New(), PostID: postID, Text: "third", CreatedAt: at.Add(2 * time.Minute), AuthorRef: "user-2"}

	for _, comment := range []domain.Comment{second, first, third} {
		req.NoError(repository.Save(comment, postID))
	}

	fetched, err := repository.GetByPostID(postID)
	req.NoError(err)
	req.Equal([]domain.Comment{first, second, third}, fetched)
}

func TestCommentRepository_GetByPostID_IsolatesPosts(t *testing.T) {
	req := require.New(t)
	db := openDB(t)
	repository := NewCommentRepository(db, slog.Default())

	postA := uuid.New()
	postB := uuid.New()
	req.NoError(repository.Save(domain.NewComment(postA, "on A", "user-1"), postA))
	req.NoError(repository.Save(domain.NewComment(postB, "on B", "user-1"), postB))

	fetched, err := repository.GetByPostID(postA)
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("on A", fetched[0].Text)
}

func TestCommentRepository_Get(t *testing.T) {
	req := require.New(t)
	db := openDB(t)
	repository := NewCommentRepository(db, slog.Default())

	postID := uuid.New()
	comment := domain.NewComment(postID, "findable", "user-2")
	req.NoError(repository.Save(comment, postID))

	fetched, ok, err := repository.Get(comment.ID)
	req.NoError(err)
	req.True(ok)
	req.Equal(comment, fetched)

	_, ok, err = repository.Get(uuid.New())
	req.NoError(err)
	req.False(ok)
}
