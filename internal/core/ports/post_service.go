package ports

import (
	"context"

	"github.com/socialnet/social-api/internal/core/domain"
)

// CreatePostInput carries all data needed to create a post. Image is an
// already-encoded data-URI (empty when no image was uploaded).
// IdempotencyKey, when non-empty, makes the creation replayable.
type CreatePostInput struct {
	UserID         string
	Description    string
	Image          string
	IdempotencyKey string
}

// CreatePostResult is returned by Create. AlreadyExisted is true when the
// Idempotency-Key matched a previously created post.
type CreatePostResult struct {
	Post           *domain.Post
	AlreadyExisted bool
}

// PostView is a post annotated with the requesting user's own reaction
// (nil when the user has not reacted).
type PostView struct {
	Post         *domain.Post
	UserReaction *domain.ReactionKind
}

// PostService defines use-case operations for posts.
type PostService interface {
	// List returns the user's own posts, newest first, each annotated with
	// that user's reaction.
	List(ctx context.Context, userID string) ([]PostView, error)
	Create(ctx context.Context, in CreatePostInput) (*CreatePostResult, error)
	// Delete removes a post owned by userID. A post that does not exist and a
	// post owned by someone else are both domain.ErrPostNotFound.
	Delete(ctx context.Context, userID, postID string) error
}
