package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/socialnet/social-api/internal/core/domain"
)

type MongoReactionRepository struct {
	db        *mongo.Database
	posts     *mongo.Collection
	reactions *mongo.Collection
}

func NewReactionRepository(db *mongo.Database) *MongoReactionRepository {
	return &MongoReactionRepository{
		db:        db,
		posts:     db.Collection(postsCollection),
		reactions: db.Collection(reactionsCollection),
	}
}

type mongoReaction struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	PostID    string    `bson:"post_id"`
	Kind      string    `bson:"reaction_type"`
	CreatedAt time.Time `bson:"created_at"`
}

// Apply executes one reaction transition inside a session transaction: the
// read of the existing reaction, the reaction row mutation, and the single
// balanced counter update all commit or abort together, so no reader ever
// observes a half-applied switch.
func (r *MongoReactionRepository) Apply(ctx context.Context, userID, postID string, requested domain.ReactionKind) (*domain.ReactionOutcome, error) {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	out, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return r.applyTx(sc, userID, postID, requested)
	})
	if err != nil {
		return nil, err
	}
	return out.(*domain.ReactionOutcome), nil
}

func (r *MongoReactionRepository) applyTx(ctx mongo.SessionContext, userID, postID string, requested domain.ReactionKind) (*domain.ReactionOutcome, error) {
	if err := r.posts.FindOne(ctx, bson.M{"_id": postID}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	// Kind validity is judged only once the post is known to exist.
	if !requested.Valid() {
		return nil, domain.ErrInvalidReaction
	}

	var existing *domain.ReactionKind
	var current mongoReaction
	err := r.reactions.FindOne(ctx, bson.M{"user_id": userID, "post_id": postID}).Decode(&current)
	switch {
	case err == nil:
		kind := domain.ReactionKind(current.Kind)
		existing = &kind
	case errors.Is(err, mongo.ErrNoDocuments):
		// first reaction for this pair
	default:
		return nil, fmt.Errorf("find reaction: %w", err)
	}

	tr := domain.ResolveReaction(existing, requested)

	switch tr.Change {
	case domain.ReactionAdded:
		doc := mongoReaction{
			ID:        uuid.NewString(),
			UserID:    userID,
			PostID:    postID,
			Kind:      string(tr.Kind),
			CreatedAt: time.Now().UTC(),
		}
		if _, err := r.reactions.InsertOne(ctx, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, domain.ErrReactionConflict
			}
			return nil, fmt.Errorf("insert reaction: %w", err)
		}

	case domain.ReactionRemoved:
		if _, err := r.reactions.DeleteOne(ctx, bson.M{"_id": current.ID}); err != nil {
			return nil, fmt.Errorf("delete reaction: %w", err)
		}

	case domain.ReactionSwitched:
		update := bson.M{"$set": bson.M{"reaction_type": string(tr.Kind)}}
		if _, err := r.reactions.UpdateOne(ctx, bson.M{"_id": current.ID}, update); err != nil {
			return nil, fmt.Errorf("update reaction: %w", err)
		}
	}

	// Both counters move in one update.
	res := r.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": postID},
		bson.M{"$inc": bson.M{"likes_count": tr.LikesDelta, "dislikes_count": tr.DislikesDelta}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated mongoPost
	if err := res.Decode(&updated); err != nil {
		return nil, fmt.Errorf("update counters: %w", err)
	}

	return &domain.ReactionOutcome{
		LikesCount:    updated.LikesCount,
		DislikesCount: updated.DislikesCount,
		UserReaction:  tr.Current,
		Change:        tr.Change,
	}, nil
}

func (r *MongoReactionRepository) KindsForPosts(ctx context.Context, userID string, postIDs []string) (map[string]domain.ReactionKind, error) {
	kinds := make(map[string]domain.ReactionKind, len(postIDs))
	if len(postIDs) == 0 {
		return kinds, nil
	}

	cur, err := r.reactions.Find(ctx, bson.M{
		"user_id": userID,
		"post_id": bson.M{"$in": postIDs},
	})
	if err != nil {
		return nil, fmt.Errorf("find reactions: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var mr mongoReaction
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode reaction: %w", err)
		}
		kinds[mr.PostID] = domain.ReactionKind(mr.Kind)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find reactions: %w", err)
	}
	return kinds, nil
}
