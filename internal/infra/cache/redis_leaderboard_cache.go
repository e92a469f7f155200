package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"checkin/internal/domain/entity"
	"checkin/internal/domain/service"
	"checkin/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	leaderboardKeyPrefix    = "leaderboard:"
	leaderboardGenKeyPrefix = "leaderboard:gen:"

	// generationTTL outlives any in-flight rebuild by a wide margin.
	generationTTL = 72 * time.Hour
)

// setIfGeneration stores ARGV[2] under KEYS[2] only while KEYS[1] still holds
// ARGV[1]. A missing generation counts as 0.
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[1]) or '0'
if current ~= ARGV[1] then
	return 0
end
local ttl = tonumber(ARGV[3])
if ttl > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ttl)
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

type redisLeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLeaderboardCache(client *redis.Client, ttl time.Duration) service.LeaderboardCache {
	return &redisLeaderboardCache{client: client, ttl: ttl}
}

func leaderboardKey(date time.Time) string {
	return leaderboardKeyPrefix + entity.FormatDate(date)
}

func leaderboardGenKey(date time.Time) string {
	return leaderboardGenKeyPrefix + entity.FormatDate(date)
}

func (c *redisLeaderboardCache) Get(ctx context.Context, date time.Time) (*entity.Leaderboard, bool, error) {
	data, err := c.client.Get(ctx, leaderboardKey(date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "failed to read cached leaderboard")
	}

	var board entity.Leaderboard
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, false, errors.Wrap(err, "failed to decode cached leaderboard")
	}

	return &board, true, nil
}

func (c *redisLeaderboardCache) Generation(ctx context.Context, date time.Time) (int64, error) {
	generation, err := c.client.Get(ctx, leaderboardGenKey(date)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, errors.Wrap(err, "failed to read leaderboard generation")
	}

	return generation, nil
}

func (c *redisLeaderboardCache) Set(ctx context.Context, board *entity.Leaderboard, generation int64) (bool, error) {
	data, err := json.Marshal(board)
	if err != nil {
		return false, errors.WithStack(err)
	}

	stored, err := setIfGeneration.Run(ctx, c.client,
		[]string{leaderboardGenKey(board.Date), leaderboardKey(board.Date)},
		strconv.FormatInt(generation, 10), data, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, errors.Wrap(err, "failed to cache leaderboard")
	}

	return stored == 1, nil
}

func (c *redisLeaderboardCache) Invalidate(ctx context.Context, date time.Time) error {
	genKey := leaderboardGenKey(date)

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, leaderboardKey(date))
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, generationTTL)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to invalidate leaderboard")
	}

	return nil
}
