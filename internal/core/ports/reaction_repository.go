package ports

import (
	"context"

	"github.com/socialnet/social-api/internal/core/domain"
)

// ReactionRepository defines persistence for reactions and the atomic
// execution of reaction transitions.
type ReactionRepository interface {
	// Apply performs the whole read-decide-write for one (user, post) pair in
	// a single transaction: it loads the caller's existing reaction, resolves
	// the transition via domain.ResolveReaction, mutates the reaction row and
	// both post counters together, and returns the post-transition outcome.
	// Returns domain.ErrPostNotFound when the post does not exist (checked
	// before the requested kind, so a missing post is not-found even for an
	// invalid kind), domain.ErrInvalidReaction for an unknown kind, and
	// domain.ErrReactionConflict when a concurrent create wins the unique
	// (user, post) index race.
	Apply(ctx context.Context, userID, postID string, requested domain.ReactionKind) (*domain.ReactionOutcome, error)

	// KindsForPosts returns userID's reaction kind keyed by post id for the
	// given posts; posts without a reaction are absent from the map.
	KindsForPosts(ctx context.Context, userID string, postIDs []string) (map[string]domain.ReactionKind, error)
}
