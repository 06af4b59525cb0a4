package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/socialnet/social-api/internal/core/domain"
	"github.com/socialnet/social-api/internal/core/ports"
)

// IdempotencyStore abstracts the post-creation replay cache (Redis).
type IdempotencyStore interface {
	// Lookup returns the post id previously created under (userID, key).
	Lookup(ctx context.Context, userID, key string) (string, bool, error)
	Remember(ctx context.Context, userID, key, postID string) error
}

type postService struct {
	posts     ports.PostRepository
	users     ports.UserRepository
	reactions ports.ReactionRepository
	idem      IdempotencyStore
	log       zerolog.Logger
}

// NewPostService returns a PostService implementation.
func NewPostService(
	posts ports.PostRepository,
	users ports.UserRepository,
	reactions ports.ReactionRepository,
	idem IdempotencyStore,
	log zerolog.Logger,
) ports.PostService {
	return &postService{posts: posts, users: users, reactions: reactions, idem: idem, log: log}
}

// List returns the user's own posts annotated with their own reaction.
func (s *postService) List(ctx context.Context, userID string) ([]ports.PostView, error) {
	posts, err := s.posts.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	kinds, err := s.reactions.KindsForPosts(ctx, userID, ids)
	if err != nil {
		return nil, err
	}

	views := make([]ports.PostView, 0, len(posts))
	for _, p := range posts {
		view := ports.PostView{Post: p}
		if k, ok := kinds[p.ID]; ok {
			kind := k
			view.UserReaction = &kind
		}
		views = append(views, view)
	}
	return views, nil
}

// Create creates a post owned by the caller. When an idempotency key is
// provided and already seen, the previously created post is returned without
// side effects.
func (s *postService) Create(ctx context.Context, in ports.CreatePostInput) (*ports.CreatePostResult, error) {
	if in.IdempotencyKey != "" {
		postID, hit, err := s.idem.Lookup(ctx, in.UserID, in.IdempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", in.UserID).Msg("idempotency lookup failed, creating anyway")
		} else if hit {
			existing, err := s.posts.FindByID(ctx, postID)
			if err == nil {
				s.log.Info().Str("idempotency_key", in.IdempotencyKey).Str("post_id", postID).Msg("idempotent replay")
				return &ports.CreatePostResult{Post: existing, AlreadyExisted: true}, nil
			}
		}
	}

	// Capture the owner's display name at creation time.
	owner, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		ID:          uuid.NewString(),
		UserID:      owner.ID,
		UserName:    owner.FullName,
		Description: in.Description,
		Image:       in.Image,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	if in.IdempotencyKey != "" {
		if err := s.idem.Remember(ctx, in.UserID, in.IdempotencyKey, post.ID); err != nil {
			s.log.Warn().Err(err).Str("post_id", post.ID).Msg("failed to store idempotency key")
		}
	}

	s.log.Info().Str("post_id", post.ID).Str("user_id", owner.ID).Msg("post created")
	return &ports.CreatePostResult{Post: post}, nil
}

func (s *postService) Delete(ctx context.Context, userID, postID string) error {
	if err := s.posts.Delete(ctx, postID, userID); err != nil {
		return err
	}
	s.log.Info().Str("post_id", postID).Str("user_id", userID).Msg("post deleted")
	return nil
}
