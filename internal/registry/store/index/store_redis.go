package index

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	id "attest/pkg/domain"
)

// RedisStore backs the index with a Redis list per principal. RPUSH/LRANGE
// match the append-only contract exactly: no dedup, no pruning, insertion
// order preserved.
type RedisStore struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func indexKey(owner id.Principal) string {
	return "skillindex:" + owner.String()
}

func (s *RedisStore) Append(ctx context.Context, owner id.Principal, name string) error {
	if err := s.client.RPush(ctx, indexKey(owner), name).Err(); err != nil {
		return fmt.Errorf("append index entry: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context, owner id.Principal) ([]string, error) {
	names, err := s.client.LRange(ctx, indexKey(owner), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list index entries: %w", err)
	}
	return names, nil
}
