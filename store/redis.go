package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "pg"

// Redis stores entries in a Redis string keyspace under prefix:key. Entries
// are written without TTL; the gate never expires persisted authorization.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis creates a Redis-backed store on the given client. An empty
// prefix falls back to "pg".
func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &Redis{
		client: client,
		prefix: prefix,
	}
}

func (s *Redis) key(k string) string {
	return s.prefix + ":" + k
}

// Get returns the stored value for key, with ok=false when absent.
func (s *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return value, true, nil
}

// Set stores value under key, overwriting any previous value.
func (s *Redis) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
