package test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"posts-lab/domain"
	"posts-lab/mocks"
	"posts-lab/repositories"
	"posts-lab/services"
)

// Test_Scenario drives the whole domain through real repositories:
// create a post, confirm it is published and visible to statistics,
// comment it twice, read the detail back, then enforce ownership.
func Test_Scenario(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	defer func() { _ = db.Close() }()

	log := slog.Default()
	postRepository := repositories.NewPostRepository(db, log)
	commentRepository := repositories.NewCommentRepository(db, log)
	publisher := mocks.NewMockIPostPublisher(ctrl)

	postService := services.NewPostService(postRepository, commentRepository, publisher, log)
	commentService := services.NewCommentService(postRepository, commentRepository, log)
	statisticsService := services.NewStatisticsService(postRepository, commentRepository)

	published := make(chan domain.PostSummary, 1)
	publisher.EXPECT().
		Publish(gomock.Any()).
		DoAndReturn(func(post domain.PostSummary) error {
			published <- post
			return nil
		}).
		Times(1)

	// Create a post and wait for its event.
	post, err := postService.CreatePost("Hello", "World", "user-1")
	req.NoError(err)
	select {
	case event := <-published:
		req.Equal(post.ID, event.ID)
	case <-time.After(time.Second):
		t.Fatal("post event was never published")
	}

	// The statistics read path sees the same domain state.
	ids, err := statisticsService.ListPostIds()
	req.NoError(err)
	req.Contains(ids, post.ID.String())

	count, err := statisticsService.CountComments(post.ID)
	req.NoError(err)
	req.Zero(count)

	// Comment twice, from a caller who is not the owner.
	_, err = commentService.AddComment(post.ID, "first", "user-2")
	req.NoError(err)
	_, err = commentService.AddComment(post.ID, "second", "user-2")
	req.NoError(err)

	detail, err := postService.GetPost(post.ID)
	req.NoError(err)
	req.Len(detail.Comments, 2)
	req.Equal("first", detail.Comments[0].Text)
	req.Equal("second", detail.Comments[1].Text)

	count, err = statisticsService.CountComments(post.ID)
	req.NoError(err)
	req.Equal(2, count)

	// A non-owner cannot rewrite the post.
	_, err = postService.UpdatePost(post.ID, "New", "Body", "user-2")
	req.Error(err)
	detail, err = postService.GetPost(post.ID)
	req.NoError(err)
	req.Equal("Hello", detail.Title)

	// The owner removes the post, comments go with it.
	req.NoError(postService.RemovePost(post.ID, "user-1"))
	_, err = postService.GetPost(post.ID)
	req.Error(err)

	count, err = statisticsService.CountComments(post.ID)
	req.NoError(err)
	req.Zero(count)
}
