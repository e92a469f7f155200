package cache

import (
	"context"
	"testing"
	"time"

	"checkin/config"
	"checkin/internal/domain/entity"
	"checkin/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRedisTokenStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	store := NewRedisTokenStore(client, time.Hour)

	token, err := store.Issue(ctx, "user-1")
	require.NoError(t, err)

	userID, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	assert.False(t, mr.Exists(tokenKeyPrefix+token), "raw token must not be a key")
	assert.True(t, mr.Exists(tokenKeyPrefix+tokenDigest(token)))

	require.NoError(t, store.Revoke(ctx, token))
	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, service.ErrTokenNotFound)
}

func TestRedisTokenStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	store := NewRedisTokenStore(client, time.Hour)

	token, err := store.Issue(ctx, "user-1")
	require.NoError(t, err)

	mr.FastForward(time.Hour + time.Second)

	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, service.ErrTokenNotFound)
}

func TestRedisTokenStore_RevokeExpired(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	clock := newClock()
	store := NewRedisTokenStore(client, time.Hour).(*redisTokenStore)
	store.now = clock.Now

	_, err := store.Issue(ctx, "user-1")
	require.NoError(t, err)
	clock.Advance(30 * time.Minute)
	fresh, err := store.Issue(ctx, "user-2")
	require.NoError(t, err)

	clock.Advance(45 * time.Minute)
	removed, err := store.RevokeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	userID, err := store.Resolve(ctx, fresh)
	require.NoError(t, err)
	assert.Equal(t, "user-2", userID)

	removed, err = store.RevokeExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestRedisStateStore_ConsumeOnce(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	store := NewRedisStateStore(client)

	require.NoError(t, store.Save(ctx, "abc", 10*time.Minute))

	ok, err := store.Consume(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Consume(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, "late", time.Minute))
	mr.FastForward(2 * time.Minute)
	ok, err = store.Consume(ctx, "late")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisLeaderboardCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	c := NewRedisLeaderboardCache(client, time.Minute)

	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	board := &entity.Leaderboard{
		Date: date,
		Entries: []*entity.LeaderboardEntry{
			{Rank: 1, CheckInID: 7, UserID: "a", Name: "Alice", CheckInTime: date.Add(9 * time.Hour), Likes: 2},
			{Rank: 2, CheckInID: 9, UserID: "b", Name: "Bob", CheckInTime: date.Add(9*time.Hour + 5*time.Minute)},
		},
	}

	gen, err := c.Generation(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)

	stored, err := c.Set(ctx, board, gen)
	require.NoError(t, err)
	assert.True(t, stored)

	got, ok, err := c.Get(ctx, date)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, board, got)

	require.NoError(t, c.Invalidate(ctx, date))
	_, ok, err = c.Get(ctx, date)
	require.NoError(t, err)
	assert.False(t, ok)

	gen, err = c.Generation(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)
}

func TestRedisLeaderboardCache_StaleGenerationIsDropped(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	c := NewRedisLeaderboardCache(client, time.Minute)

	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	board := &entity.Leaderboard{Date: date, Entries: []*entity.LeaderboardEntry{}}

	gen, err := c.Generation(ctx, date)
	require.NoError(t, err)

	require.NoError(t, c.Invalidate(ctx, date))

	stored, err := c.Set(ctx, board, gen)
	require.NoError(t, err)
	assert.False(t, stored)
	assert.False(t, mr.Exists(leaderboardKey(date)))

	gen, err = c.Generation(ctx, date)
	require.NoError(t, err)
	stored, err = c.Set(ctx, board, gen)
	require.NoError(t, err)
	assert.True(t, stored)
	assert.True(t, mr.Exists(leaderboardKey(date)))
	assert.Equal(t, time.Minute, mr.TTL(leaderboardKey(date)))
	assert.Equal(t, generationTTL, mr.TTL(leaderboardGenKey(date)))
}

func TestClientOptions(t *testing.T) {
	opts, err := clientOptions(nil)
	require.NoError(t, err)
	assert.Nil(t, opts)

	opts, err = clientOptions(&config.RedisConfig{URL: "redis://:secret@cache:6380/2", Addr: "ignored:1", PoolSize: 5})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 5, opts.PoolSize)

	opts, err = clientOptions(&config.RedisConfig{Addr: "localhost:6379", DB: 1})
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 1, opts.DB)

	_, err = clientOptions(&config.RedisConfig{URL: "http://nope"})
	assert.Error(t, err)
}

func TestStoreProviders_FallBackToMemory(t *testing.T) {
	cfg := &config.Config{
		Session:     &config.SessionConfig{TokenTTL: time.Hour},
		Leaderboard: &config.LeaderboardConfig{CacheTTL: time.Minute},
	}

	assert.IsType(t, &memoryTokenStore{}, NewTokenStore(StoreParams{Config: cfg}))
	assert.IsType(t, &memoryStateStore{}, NewStateStore(StoreParams{Config: cfg}))
	assert.IsType(t, &memoryLeaderboardCache{}, NewLeaderboardCache(StoreParams{Config: cfg}))
	assert.IsType(t, &memorySessionRevocationStore{}, NewSessionRevocationStore(StoreParams{Config: cfg}))

	_, client := newTestRedis(t)
	assert.IsType(t, &redisTokenStore{}, NewTokenStore(StoreParams{Client: client, Config: cfg}))
	assert.IsType(t, &redisStateStore{}, NewStateStore(StoreParams{Client: client, Config: cfg}))
	assert.IsType(t, &redisLeaderboardCache{}, NewLeaderboardCache(StoreParams{Client: client, Config: cfg}))
	assert.IsType(t, &redisSessionRevocationStore{}, NewSessionRevocationStore(StoreParams{Client: client, Config: cfg}))
}

func TestRedisSessionRevocationStore(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	now := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	store := NewRedisSessionRevocationStore(client).(*redisSessionRevocationStore)
	store.now = func() time.Time { return now }

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", now.Add(time.Hour)))
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Equal(t, time.Hour, mr.TTL(revokedSessionKeyPrefix+"jti-1"))

	require.NoError(t, store.Revoke(ctx, "jti-old", now.Add(-time.Minute)))
	assert.False(t, mr.Exists(revokedSessionKeyPrefix+"jti-old"))

	mr.FastForward(time.Hour)
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}
