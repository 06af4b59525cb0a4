package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore remembers which post a given Idempotency-Key produced, so
// a retried create returns the original post instead of a duplicate.
// Key format: idempotency:<user_id>:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup returns the post id previously created under (userID, key), with
// ok=false when the key has not been seen.
func (s *IdempotencyStore) Lookup(ctx context.Context, userID, key string) (string, bool, error) {
	postID, err := s.client.Get(ctx, s.key(userID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("idempotency lookup: %w", err)
	}
	return postID, true, nil
}

// Remember records that (userID, key) produced postID (expires after idempotencyTTL).
func (s *IdempotencyStore) Remember(ctx context.Context, userID, key, postID string) error {
	return s.client.Set(ctx, s.key(userID, key), postID, idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(userID, key string) string {
	return fmt.Sprintf("idempotency:%s:%s", userID, key)
}
