package cache

import (
	"context"
	"time"

	"checkin/internal/domain/service"
	"checkin/internal/errors"

	"github.com/redis/go-redis/v9"
)

const stateKeyPrefix = "oauth:state:"

type redisStateStore struct {
	client *redis.Client
}

func NewRedisStateStore(client *redis.Client) service.StateStore {
	return &redisStateStore{client: client}
}

func (s *redisStateStore) Save(ctx context.Context, state string, ttl time.Duration) error {
	if err := s.client.Set(ctx, stateKeyPrefix+state, "1", ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save oauth state")
	}

	return nil
}

// Consume uses GETDEL so a state value is accepted at most once.
func (s *redisStateStore) Consume(ctx context.Context, state string) (bool, error) {
	v, err := s.client.GetDel(ctx, stateKeyPrefix+state).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to consume oauth state")
	}

	return v != "", nil
}
