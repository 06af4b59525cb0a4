package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/socialnet/social-api/internal/core/domain"
	"github.com/socialnet/social-api/internal/core/ports"
)

type reactionService struct {
	repo ports.ReactionRepository
	log  zerolog.Logger
}

// NewReactionService returns the reaction engine's service implementation.
// All counter movement goes through here and nowhere else.
func NewReactionService(repo ports.ReactionRepository, log zerolog.Logger) ports.ReactionService {
	return &reactionService{repo: repo, log: log}
}

// Apply runs one reaction transition for (userID, postID). The repository
// executes the read-decide-write atomically, resolving the post before the
// kind is judged: reacting to a missing post is not-found even when the
// requested kind is garbage.
func (s *reactionService) Apply(ctx context.Context, userID, postID string, requested domain.ReactionKind) (*domain.ReactionOutcome, error) {
	out, err := s.repo.Apply(ctx, userID, postID, requested)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("post_id", postID).
		Str("user_id", userID).
		Str("kind", string(requested)).
		Str("change", string(out.Change)).
		Int("likes", out.LikesCount).
		Int("dislikes", out.DislikesCount).
		Msg("reaction applied")

	return out, nil
}
