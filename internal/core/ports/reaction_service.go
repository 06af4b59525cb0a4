package ports

import (
	"context"

	"github.com/socialnet/social-api/internal/core/domain"
)

// ReactionService is the reaction engine's use-case surface: apply one
// requested reaction for one (user, post) pair and report the resulting
// counters and the caller's current reaction.
type ReactionService interface {
	Apply(ctx context.Context, userID, postID string, requested domain.ReactionKind) (*domain.ReactionOutcome, error)
}
