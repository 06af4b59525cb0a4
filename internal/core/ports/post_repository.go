package ports

import (
	"context"

	"github.com/socialnet/social-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// ListByOwner returns ownerID's posts sorted by creation time descending.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Post, error)
	// Delete removes the post only when it is owned by ownerID, along with
	// all reactions attached to it. Returns domain.ErrPostNotFound when the
	// post does not exist or belongs to another user.
	Delete(ctx context.Context, postID, ownerID string) error
}
