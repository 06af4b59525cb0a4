package domain

import "time"

// ReactionKind is the kind of reaction a user attaches to a post.
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// Valid reports whether k is one of the allowed reaction kinds.
func (k ReactionKind) Valid() bool {
	return k == ReactionLike || k == ReactionDislike
}

// Reaction records a single user's reaction to a single post.
// At most one Reaction exists per (user, post) pair.
type Reaction struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	PostID    string       `json:"post_id"`
	Kind      ReactionKind `json:"reaction_type"`
	CreatedAt time.Time    `json:"created_at"`
}

// ReactionChange names the three possible transitions of the reaction state
// machine for one (user, post) pair.
type ReactionChange string

const (
	ReactionAdded    ReactionChange = "added"    // no reaction → reaction of the requested kind
	ReactionRemoved  ReactionChange = "removed"  // same kind requested again → reaction deleted
	ReactionSwitched ReactionChange = "switched" // other kind requested → kind flipped
)

// Transition describes the single balanced update the store must apply:
// which change to make to the Reaction row and how both post counters move.
// LikesDelta + DislikesDelta is always -1 (removed), 0 (switched) or +1 (added).
type Transition struct {
	Change        ReactionChange
	Kind          ReactionKind // kind to write on added/switched; kind deleted on removed
	LikesDelta    int
	DislikesDelta int
	Current       *ReactionKind // caller's reaction after the transition; nil when removed
}

// ResolveReaction decides the transition for a requested kind given the
// caller's existing reaction (nil when none). It is the single source of
// truth for counter movement; callers must apply the whole Transition
// atomically.
func ResolveReaction(existing *ReactionKind, requested ReactionKind) Transition {
	switch {
	case existing == nil:
		t := Transition{Change: ReactionAdded, Kind: requested, Current: &requested}
		t.LikesDelta, t.DislikesDelta = counterDelta(requested, +1)
		return t

	case *existing == requested:
		t := Transition{Change: ReactionRemoved, Kind: requested}
		t.LikesDelta, t.DislikesDelta = counterDelta(requested, -1)
		return t

	default:
		oldLikes, oldDislikes := counterDelta(*existing, -1)
		newLikes, newDislikes := counterDelta(requested, +1)
		return Transition{
			Change:        ReactionSwitched,
			Kind:          requested,
			LikesDelta:    oldLikes + newLikes,
			DislikesDelta: oldDislikes + newDislikes,
			Current:       &requested,
		}
	}
}

// counterDelta maps a kind to its (likes, dislikes) movement.
func counterDelta(kind ReactionKind, sign int) (likes, dislikes int) {
	if kind == ReactionLike {
		return sign, 0
	}
	return 0, sign
}

// ReactionOutcome is the post-transition view returned to the caller:
// the post's updated counters, the caller's own current reaction, and the
// change that was applied.
type ReactionOutcome struct {
	LikesCount    int
	DislikesCount int
	UserReaction  *ReactionKind
	Change        ReactionChange
}
