package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/socialnet/social-api/internal/core/domain"
)

type MongoPostRepository struct {
	db        *mongo.Database
	posts     *mongo.Collection
	reactions *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{
		db:        db,
		posts:     db.Collection(postsCollection),
		reactions: db.Collection(reactionsCollection),
	}
}

type mongoPost struct {
	ID            string    `bson:"_id"`
	UserID        string    `bson:"user_id"`
	UserName      string    `bson:"user_name"`
	Description   string    `bson:"description"`
	Image         string    `bson:"image,omitempty"`
	LikesCount    int       `bson:"likes_count"`
	DislikesCount int       `bson:"dislikes_count"`
	CreatedAt     time.Time `bson:"created_at"`
}

func (r *MongoPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if _, err := r.posts.InsertOne(ctx, toMongoPost(post)); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	var mp mongoPost
	if err := r.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return fromMongoPost(&mp), nil
}

func (r *MongoPostRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.posts.Find(ctx, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	var posts []*domain.Post
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, fromMongoPost(&mp))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Delete removes the post only when owned by ownerID and, in the same
// transaction, every reaction attached to it. An unowned post and a missing
// post are indistinguishable to the caller.
func (r *MongoPostRepository) Delete(ctx context.Context, postID, ownerID string) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.posts.DeleteOne(sc, bson.M{"_id": postID, "user_id": ownerID})
		if err != nil {
			return nil, fmt.Errorf("delete post: %w", err)
		}
		if res.DeletedCount == 0 {
			return nil, domain.ErrPostNotFound
		}
		if _, err := r.reactions.DeleteMany(sc, bson.M{"post_id": postID}); err != nil {
			return nil, fmt.Errorf("delete post reactions: %w", err)
		}
		return nil, nil
	})
	return err
}

func toMongoPost(p *domain.Post) mongoPost {
	return mongoPost{
		ID:            p.ID,
		UserID:        p.UserID,
		UserName:      p.UserName,
		Description:   p.Description,
		Image:         p.Image,
		LikesCount:    p.LikesCount,
		DislikesCount: p.DislikesCount,
		CreatedAt:     p.CreatedAt,
	}
}

func fromMongoPost(mp *mongoPost) *domain.Post {
	return &domain.Post{
		ID:            mp.ID,
		UserID:        mp.UserID,
		UserName:      mp.UserName,
		Description:   mp.Description,
		Image:         mp.Image,
		LikesCount:    mp.LikesCount,
		DislikesCount: mp.DislikesCount,
		CreatedAt:     mp.CreatedAt,
	}
}
