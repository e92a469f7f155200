package cache

import (
	"context"
	"strconv"
	"time"

	"checkin/internal/domain/service"
	"checkin/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	tokenKeyPrefix = "session:token:"
	tokenExpiryKey = "session:expiry"
)

type redisTokenStore struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisTokenStore keeps token digests as keys with a TTL, plus a sorted
// set of expiry times so RevokeExpired can count and clear them.
func NewRedisTokenStore(client *redis.Client, ttl time.Duration) service.TokenStore {
	return &redisTokenStore{client: client, ttl: ttl, now: time.Now}
}

func (s *redisTokenStore) Issue(ctx context.Context, userID string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	digest := tokenDigest(token)
	expiresAt := s.now().Add(s.ttl)

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, tokenKeyPrefix+digest, userID, s.ttl)
		pipe.ZAdd(ctx, tokenExpiryKey, redis.Z{Score: float64(expiresAt.Unix()), Member: digest})

		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to store session token")
	}

	return token, nil
}

func (s *redisTokenStore) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, tokenKeyPrefix+tokenDigest(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", service.ErrTokenNotFound
		}

		return "", errors.Wrap(err, "failed to resolve session token")
	}

	return userID, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, token string) error {
	digest := tokenDigest(token)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, tokenKeyPrefix+digest)
		pipe.ZRem(ctx, tokenExpiryKey, digest)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to revoke session token")
	}

	return nil
}

func (s *redisTokenStore) RevokeExpired(ctx context.Context) (int, error) {
	maxScore := strconv.FormatInt(s.now().Unix(), 10)

	digests, err := s.client.ZRangeByScore(ctx, tokenExpiryKey, &redis.ZRangeBy{Min: "-inf", Max: maxScore}).Result()
	if err != nil {
		return 0, errors.Wrap(err, "failed to list expired session tokens")
	}
	if len(digests) == 0 {
		return 0, nil
	}

	keys := make([]string, len(digests))
	members := make([]any, len(digests))
	for i, digest := range digests {
		keys[i] = tokenKeyPrefix + digest
		members[i] = digest
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		pipe.ZRem(ctx, tokenExpiryKey, members...)

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to remove expired session tokens")
	}

	return len(digests), nil
}

func (s *redisTokenStore) TTL() time.Duration {
	return s.ttl
}
