package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/socialnet/social-api/internal/core/domain"
)

// stubReactionRepo mirrors the real Mongo repository: it resolves the
// transition with domain.ResolveReaction and applies the reaction row change
// and both counter deltas together.
type stubReactionRepo struct {
	posts     map[string]*domain.Post
	reactions map[string]domain.ReactionKind // keyed user|post
	applyErr  error                          // if set, Apply returns this error
}

func newStubReactionRepo() *stubReactionRepo {
	return &stubReactionRepo{
		posts:     make(map[string]*domain.Post),
		reactions: make(map[string]domain.ReactionKind),
	}
}

func reactionKey(userID, postID string) string { return userID + "|" + postID }

func (r *stubReactionRepo) Apply(_ context.Context, userID, postID string, requested domain.ReactionKind) (*domain.ReactionOutcome, error) {
	if r.applyErr != nil {
		return nil, r.applyErr
	}

	post, ok := r.posts[postID]
	if !ok {
		return nil, domain.ErrPostNotFound
	}

	if !requested.Valid() {
		return nil, domain.ErrInvalidReaction
	}

	var existing *domain.ReactionKind
	if k, ok := r.reactions[reactionKey(userID, postID)]; ok {
		kind := k
		existing = &kind
	}

	tr := domain.ResolveReaction(existing, requested)
	switch tr.Change {
	case domain.ReactionAdded, domain.ReactionSwitched:
		r.reactions[reactionKey(userID, postID)] = tr.Kind
	case domain.ReactionRemoved:
		delete(r.reactions, reactionKey(userID, postID))
	}

	post.LikesCount += tr.LikesDelta
	post.DislikesCount += tr.DislikesDelta

	return &domain.ReactionOutcome{
		LikesCount:    post.LikesCount,
		DislikesCount: post.DislikesCount,
		UserReaction:  tr.Current,
		Change:        tr.Change,
	}, nil
}

func (r *stubReactionRepo) KindsForPosts(_ context.Context, userID string, postIDs []string) (map[string]domain.ReactionKind, error) {
	kinds := make(map[string]domain.ReactionKind)
	for _, id := range postIDs {
		if k, ok := r.reactions[reactionKey(userID, id)]; ok {
			kinds[id] = k
		}
	}
	return kinds, nil
}

func TestReactionService_InvalidKind(t *testing.T) {
	repo := newStubReactionRepo()
	repo.posts["p1"] = &domain.Post{ID: "p1"}
	svc := NewReactionService(repo, zerolog.Nop())

	if _, err := svc.Apply(context.Background(), "u1", "p1", "love"); !errors.Is(err, domain.ErrInvalidReaction) {
		t.Fatalf("expected ErrInvalidReaction, got %v", err)
	}
}

// A missing post is not-found no matter what kind the request carries.
func TestReactionService_NotFoundBeatsInvalidKind(t *testing.T) {
	svc := NewReactionService(newStubReactionRepo(), zerolog.Nop())

	if _, err := svc.Apply(context.Background(), "u1", "missing-post", "love"); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestReactionService_PostNotFound(t *testing.T) {
	svc := NewReactionService(newStubReactionRepo(), zerolog.Nop())

	if _, err := svc.Apply(context.Background(), "u1", "missing", domain.ReactionLike); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestReactionService_AddReaction(t *testing.T) {
	repo := newStubReactionRepo()
	repo.posts["p1"] = &domain.Post{ID: "p1"}
	svc := NewReactionService(repo, zerolog.Nop())

	out, err := svc.Apply(context.Background(), "u1", "p1", domain.ReactionLike)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if out.LikesCount != 1 || out.DislikesCount != 0 {
		t.Fatalf("expected counters (1, 0), got (%d, %d)", out.LikesCount, out.DislikesCount)
	}
	if out.UserReaction == nil || *out.UserReaction != domain.ReactionLike {
		t.Fatalf("expected like reaction, got %v", out.UserReaction)
	}
	if out.Change != domain.ReactionAdded {
		t.Fatalf("expected added, got %s", out.Change)
	}
}

// The end-to-end scenario: like, toggle off, dislike, then a second user's
// like. Counters and the caller's reaction must track every step.
func TestReactionService_Scenario(t *testing.T) {
	repo := newStubReactionRepo()
	repo.posts["p1"] = &domain.Post{ID: "p1"}
	svc := NewReactionService(repo, zerolog.Nop())
	ctx := context.Background()

	// User A likes.
	out, err := svc.Apply(ctx, "userA", "p1", domain.ReactionLike)
	if err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if out.LikesCount != 1 || out.DislikesCount != 0 || out.UserReaction == nil || *out.UserReaction != domain.ReactionLike {
		t.Fatalf("after like: %+v", out)
	}

	// User A likes again: toggle off.
	out, err = svc.Apply(ctx, "userA", "p1", domain.ReactionLike)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if out.LikesCount != 0 || out.DislikesCount != 0 || out.UserReaction != nil {
		t.Fatalf("after toggle off: %+v", out)
	}
	if out.Change != domain.ReactionRemoved {
		t.Fatalf("expected removed, got %s", out.Change)
	}

	// User A dislikes.
	out, err = svc.Apply(ctx, "userA", "p1", domain.ReactionDislike)
	if err != nil {
		t.Fatalf("dislike failed: %v", err)
	}
	if out.LikesCount != 0 || out.DislikesCount != 1 || out.UserReaction == nil || *out.UserReaction != domain.ReactionDislike {
		t.Fatalf("after dislike: %+v", out)
	}

	// User B likes: independent pair, shared counters.
	out, err = svc.Apply(ctx, "userB", "p1", domain.ReactionLike)
	if err != nil {
		t.Fatalf("userB like failed: %v", err)
	}
	if out.LikesCount != 1 || out.DislikesCount != 1 {
		t.Fatalf("after userB like: %+v", out)
	}
}

func TestReactionService_Switch(t *testing.T) {
	repo := newStubReactionRepo()
	repo.posts["p1"] = &domain.Post{ID: "p1", LikesCount: 3, DislikesCount: 1}
	repo.reactions[reactionKey("u1", "p1")] = domain.ReactionLike
	svc := NewReactionService(repo, zerolog.Nop())

	out, err := svc.Apply(context.Background(), "u1", "p1", domain.ReactionDislike)
	if err != nil {
		t.Fatalf("switch failed: %v", err)
	}
	if out.LikesCount != 2 || out.DislikesCount != 2 {
		t.Fatalf("expected counters (2, 2), got (%d, %d)", out.LikesCount, out.DislikesCount)
	}
	if out.Change != domain.ReactionSwitched {
		t.Fatalf("expected switched, got %s", out.Change)
	}
	// Sum is unchanged on a switch.
	if out.LikesCount+out.DislikesCount != 4 {
		t.Fatalf("switch changed the counter sum")
	}
}

// Toggling off and re-requesting the same kind must restore the original
// state, as if the toggle never happened.
func TestReactionService_ToggleOffThenRecreate(t *testing.T) {
	repo := newStubReactionRepo()
	repo.posts["p1"] = &domain.Post{ID: "p1", LikesCount: 5}
	repo.reactions[reactionKey("u1", "p1")] = domain.ReactionLike
	svc := NewReactionService(repo, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Apply(ctx, "u1", "p1", domain.ReactionLike); err != nil {
		t.Fatalf("toggle off failed: %v", err)
	}
	out, err := svc.Apply(ctx, "u1", "p1", domain.ReactionLike)
	if err != nil {
		t.Fatalf("recreate failed: %v", err)
	}
	if out.LikesCount != 5 || out.UserReaction == nil || *out.UserReaction != domain.ReactionLike {
		t.Fatalf("expected restored state, got %+v", out)
	}
}

func TestReactionService_ConflictPropagates(t *testing.T) {
	repo := newStubReactionRepo()
	repo.applyErr = domain.ErrReactionConflict
	svc := NewReactionService(repo, zerolog.Nop())

	if _, err := svc.Apply(context.Background(), "u1", "p1", domain.ReactionLike); !errors.Is(err, domain.ErrReactionConflict) {
		t.Fatalf("expected ErrReactionConflict, got %v", err)
	}
}
