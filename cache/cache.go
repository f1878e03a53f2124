package cache

import (
	"ChronicStable/database"
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// Store is a thin wrapper over the Redis client. It backs the transient
// session transcripts; persisted entities always read straight from Postgres.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Store instance, ensuring that RedisClient is not nil.
func NewStore() (*Store, error) {
	if database.RedisClient == nil {
		return nil, errors.New("Redis client is not initialized")
	}
	return &Store{client: database.RedisClient}, nil
}

func (s *Store) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if s.client == nil {
		return errors.New("Redis client is not initialized")
	}
	return s.client.Set(ctx, key, value, expiration).Err()
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if s.client == nil {
		return "", errors.New("Redis client is not initialized")
	}
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil // key does not exist
	}
	return val, err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if s.client == nil {
		return errors.New("Redis client is not initialized")
	}
	return s.client.Del(ctx, key).Err()
}

func (s *Store) DeleteAll(ctx context.Context, pattern string) error {
	if s.client == nil {
		return errors.New("Redis client is not initialized")
	}
	// Use SCAN for better efficiency on large datasets
	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Expire refreshes the TTL on a key. Used for the sliding session expiry.
func (s *Store) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if s.client == nil {
		return errors.New("Redis client is not initialized")
	}
	return s.client.Expire(ctx, key, ttl).Err()
}
