//go:generate go run go.uber.org/mock/mockgen -source=publisher.go -destination=../mocks/mock_post_publisher.go -package=mocks
package publishers

import "posts-lab/domain"

// IPostPublisher is the outbound port for domain events. Delivery is
// best-effort: an error means the event was dropped, and callers must
// treat it as a warning, never as a failed operation.
type IPostPublisher interface {
	Publish(post domain.PostSummary) error
}
