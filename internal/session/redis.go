package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Getter is the part of a Redis client RedisStore needs. *redis.Client
// satisfies it.
type Getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisStore reads sessions saved as JSON strings under <Prefix><key>.
type RedisStore struct {
	client Getter
	prefix string
}

// NewRedisStore creates a RedisStore over client.
func NewRedisStore(client Getter, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// NewRedisClient connects to the Redis server at addr.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// GetData implements Store.
func (s *RedisStore) GetData(ctx context.Context, key string) (*Data, error) {
	if key == "" {
		return nil, fmt.Errorf("invalid session key %q", key)
	}

	redisKey := s.prefix + key
	raw, err := s.client.Get(ctx, redisKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, redisKey)
		}
		return nil, fmt.Errorf("failed to read session %s: %w", redisKey, err)
	}
	return decode(raw, redisKey)
}
