package session

import (
	"context"
	"time"

	"protrack-service/internal/app/contracts"
)

type redisStore struct {
	redisRepository contracts.RedisRepository
}

func NewRedisStore(redisRepository contracts.RedisRepository) contracts.SessionStore {
	return &redisStore{redisRepository: redisRepository}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	return s.redisRepository.Get(ctx, key)
}

func (s *redisStore) Set(ctx context.Context, key, value string, exp time.Duration) error {
	return s.redisRepository.Set(ctx, key, value, exp)
}

func (s *redisStore) Clear(ctx context.Context, key string) error {
	return s.redisRepository.Delete(ctx, key)
}
