package cache

import (
	"context"
	"time"

	"checkin/internal/domain/service"
	"checkin/internal/errors"

	"github.com/redis/go-redis/v9"
)

const revokedSessionKeyPrefix = "session:revoked:"

type redisSessionRevocationStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisSessionRevocationStore(client *redis.Client) service.SessionRevocationStore {
	return &redisSessionRevocationStore{client: client, now: time.Now}
}

// Revoke keeps the marker only as long as the token itself would have lived.
func (s *redisSessionRevocationStore) Revoke(ctx context.Context, sessionID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, revokedSessionKeyPrefix+sessionID, 1, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}

func (s *redisSessionRevocationStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedSessionKeyPrefix+sessionID).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to check session revocation")
	}

	return n > 0, nil
}
