package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adiwarman/forum-api/domain"
)

const KeyRefreshToken = "auth:refresh:%s"

type refreshTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ domain.RefreshTokenStore = (*refreshTokenStore)(nil)

// NewRefreshTokenStore keeps refresh tokens in redis, expiry handled by key TTL.
func NewRefreshTokenStore(client *redis.Client, ttl time.Duration) *refreshTokenStore {
	return &refreshTokenStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *refreshTokenStore) Save(ctx context.Context, token, userID string) error {
	key := fmt.Sprintf(KeyRefreshToken, token)
	return s.client.Set(ctx, key, userID, s.ttl).Err()
}

func (s *refreshTokenStore) Resolve(ctx context.Context, token string) (string, error) {
	key := fmt.Sprintf(KeyRefreshToken, token)
	userID, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		// Expired and revoked tokens look identical here.
		return "", domain.ErrNotAuthenticated
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (s *refreshTokenStore) Delete(ctx context.Context, token string) error {
	key := fmt.Sprintf(KeyRefreshToken, token)
	return s.client.Del(ctx, key).Err()
}
