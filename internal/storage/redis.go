package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bookflow/pkg/logger"
)

const redisTimeout = 5 * time.Second

// RedisStore keeps collections in Redis. Keys are namespaced so several
// deployments can share one server.
type RedisStore struct {
	client    *redis.Client
	logger    logger.Logger
	namespace string
}

func NewRedisStore(host, port string, db int, namespace string, log logger.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port),
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	return &RedisStore{client: client, logger: log, namespace: namespace}, nil
}

func (s *RedisStore) makeKey(key string) string {
	if s.namespace == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", s.namespace, key)
}

func (s *RedisStore) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	value, err := s.client.Get(ctx, s.makeKey(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Error("Store read failed, treating key as absent", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil, false
	}

	return value, true
}

func (s *RedisStore) Set(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.makeKey(key), value, 0).Err(); err != nil {
		s.logger.Error("Store write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return fmt.Errorf("could not write key %s: %w", key, err)
	}

	return nil
}

func (s *RedisStore) Remove(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := s.client.Del(ctx, s.makeKey(key)).Err(); err != nil {
		s.logger.Error("Store remove failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return fmt.Errorf("could not remove key %s: %w", key, err)
	}

	return nil
}

func (s *RedisStore) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error { return s.client.Close() }
