//go:generate go run go.uber.org/mock/mockgen -source=post.go -destination=../mocks/mock_post_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	"posts-lab/domain"
	pb "posts-lab/proto/storage"
)

// IPostRepository is the storage port the post service depends on.
// Get returns (zero, false, nil) for an absent id; an error always
// means a storage failure, never "not found".
type IPostRepository interface {
	Save(post domain.PostSummary) error
	Update(post domain.PostSummary) error
	Delete(id uuid.UUID) error
	Get(id uuid.UUID) (domain.PostSummary, bool, error)
	GetAll() ([]domain.PostSummary, error)
}

type PostRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewPostRepository(db *badger.DB, log *slog.Logger) PostRepository {
	return PostRepository{db: db, log: log}
}

func postKey(id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("post:%s", id))
}

func (r PostRepository) Save(post domain.PostSummary) error {
	bytes, err := proto.Marshal(lo.ToPtr(fromPostSummary(post)))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(postKey(post.ID), bytes)
	})
}

// Update rewrites an existing post and is a no-op when the id is
// absent. The existence check and the write share one transaction.
func (r PostRepository) Update(post domain.PostSummary) error {
	bytes, err := proto.Marshal(lo.ToPtr(fromPostSummary(post)))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(postKey(post.ID)); err != nil {
			if err == badger.ErrKeyNotFound {
				r.log.Warn("Update skipped, post absent", "id", post.ID)
				return nil
			}
			return err
		}
		return txn.Set(postKey(post.ID), bytes)
	})
}

// Delete removes the post and every comment stored under its prefix.
func (r PostRepository) Delete(id uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(postKey(id)); err != nil {
			return err
		}
		prefix := []byte(fmt.Sprintf("comment:%s:", id))
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		var keys [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r PostRepository) Get(id uuid.UUID) (domain.PostSummary, bool, error) {
	var bytes []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err != nil {
			return err
		}
		bytes, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return domain.PostSummary{}, false, nil
	}
	if err != nil {
		return domain.PostSummary{}, false, err
	}

	var postPb pb.Post
	if err = proto.Unmarshal(bytes, &postPb); err != nil {
		return domain.PostSummary{}, false, err
	}
	post, err := toPostSummary(&postPb)
	if err != nil {
		return domain.PostSummary{}, false, err
	}
	return post, true, nil
}

// GetAll scans the "post:" prefix. Iteration order is the key order,
// stable within one read but not meaningful beyond that.
func (r PostRepository) GetAll() ([]domain.PostSummary, error) {
	var bytePosts [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("post:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				bytePosts = append(bytePosts, append([]byte(nil), value...))
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

	posts := make([]domain.PostSummary, 0, len(bytePosts))
	for _, b := range bytePosts {
		var postPb pb.Post
		if err = proto.Unmarshal(b, &postPb); err != nil {
			return nil, err
		}
		post, err := toPostSummary(&postPb)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func fromPostSummary(post domain.PostSummary) pb.Post {
	return pb.Post{
		Id:        post.ID.String(),
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: timestamppb.New(post.CreatedAt),
		UserRef:   post.UserRef,
	}
}

func toPostSummary(postPb *pb.Post) (domain.PostSummary, error) {
	id, err := uuid.Parse(postPb.Id)
	if err != nil {
		return domain.PostSummary{}, err
	}
	return domain.PostSummary{
		ID:        id,
		Title:     postPb.Title,
		Content:   postPb.Content,
		CreatedAt: postPb.CreatedAt.AsTime(),
		UserRef:   postPb.UserRef,
	}, nil
}
