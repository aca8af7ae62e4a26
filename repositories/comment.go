//go:generate go run go.uber.org/mock/mockgen -source=comment.go -destination=../mocks/mock_comment_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	"posts-lab/domain"
	pb "posts-lab/proto/storage"
)

// ICommentRepository is the storage port the comment service depends
// on. Same absent-vs-failure contract as IPostRepository.
type ICommentRepository interface {
	Save(comment domain.Comment, postID uuid.UUID) error
	GetByPostID(postID uuid.UUID) ([]domain.Comment, error)
	Get(id uuid.UUID) (domain.Comment, bool, error)
}

type CommentRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewCommentRepository(db *badger.DB, log *slog.Logger) CommentRepository {
	return CommentRepository{db: db, log: log}
}

// commentKey is "comment:{post_id}:{timestamp_padded}:{comment_id}" to:
//  1. Group the comments of one post under a single prefix.
//  2. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  3. Prevent collisions if two comments arrive at the same nanosecond.
func commentKey(comment domain.Comment, postID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("comment:%s:%019d:%s",
		postID,
		comment.CreatedAt.UnixNano(),
		comment.ID,
	))
}

func (r CommentRepository) Save(comment domain.Comment, postID uuid.UUID) error {
	bytes, err := proto.Marshal(lo.ToPtr(fromComment(comment)))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(commentKey(comment, postID), bytes)
	})
}

// GetByPostID scans the post's comment prefix. The padded timestamp in
// the key returns comments naturally sorted by creation time.
func (r CommentRepository) GetByPostID(postID uuid.UUID) ([]domain.Comment, error) {
	var byteComments [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("comment:%s:", postID))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				byteComments = append(byteComments, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(byteComments))
	for _, b := range byteComments {
		comment, err := unmarshalComment(b)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

// Get looks a comment up by id alone. The key carries the post id
// first, so this is a scan over the comment keyspace; the id is the
// last key segment.
func (r CommentRepository) Get(id uuid.UUID) (domain.Comment, bool, error) {
	suffix := ":" + id.String()
	var bytes []byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("comment:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			if !strings.HasSuffix(string(item.Key()), suffix) {
				continue
			}
			var err error
			bytes, err = item.ValueCopy(nil)
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Comment{}, false, err
	}
	if bytes == nil {
		return domain.Comment{}, false, nil
	}
	comment, err := unmarshalComment(bytes)
	if err != nil {
		return domain.Comment{}, false, err
	}
	return comment, true, nil
}

func unmarshalComment(b []byte) (domain.Comment, error) {
	var commentPb pb.Comment
	if err := proto.Unmarshal(b, &commentPb); err != nil {
		return domain.Comment{}, err
	}
	return toComment(&commentPb)
}

func fromComment(comment domain.Comment) pb.Comment {
	return pb.Comment{
		Id:        comment.ID.String(),
		PostId:    comment.PostID.String(),
		Text:      comment.Text,
		CreatedAt: timestamppb.New(comment.CreatedAt),
		AuthorRef: comment.AuthorRef,
	}
}

func toComment(commentPb *pb.Comment) (domain.Comment, error) {
	id, err := uuid.Parse(commentPb.Id)
	if err != nil {
		return domain.Comment{}, err
	}
	postID, err := uuid.Parse(commentPb.PostId)
	if err != nil {
		return domain.Comment{}, err
	}
	return domain.Comment{
		ID:        id,
		PostID:    postID,
		Text:      commentPb.Text,
		CreatedAt: commentPb.CreatedAt.AsTime(),
		AuthorRef: commentPb.AuthorRef,
	}, nil
}
