package cache

import (
	"context"
	"testing"
	"time"

	"checkin/internal/domain/entity"
	"checkin/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)}
}

func TestMemoryTokenStore_IssueAndResolve(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	store := NewMemoryTokenStore(time.Hour).(*memoryTokenStore)
	store.now = clock.Now

	token, err := store.Issue(ctx, "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	other, err := store.Issue(ctx, "user-1")
	require.NoError(t, err)
	assert.NotEqual(t, token, other)

	_, err = store.Resolve(ctx, "never-issued")
	assert.ErrorIs(t, err, service.ErrTokenNotFound)
}

func TestMemoryTokenStore_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	store := NewMemoryTokenStore(time.Hour).(*memoryTokenStore)
	store.now = clock.Now

	token, err := store.Issue(ctx, "user-1")
	require.NoError(t, err)

	clock.Advance(time.Hour)
	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)

	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, service.ErrTokenNotFound)
}

func TestMemoryTokenStore_Revoke(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTokenStore(time.Hour)

	token, err := store.Issue(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, token))
	require.NoError(t, store.Revoke(ctx, token))

	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, service.ErrTokenNotFound)
}

func TestMemoryTokenStore_RevokeExpired(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	store := NewMemoryTokenStore(time.Hour).(*memoryTokenStore)
	store.now = clock.Now

	_, err := store.Issue(ctx, "user-1")
	require.NoError(t, err)
	_, err = store.Issue(ctx, "user-2")
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	fresh, err := store.Issue(ctx, "user-3")
	require.NoError(t, err)

	clock.Advance(45 * time.Minute)
	removed, err := store.RevokeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	userID, err := store.Resolve(ctx, fresh)
	require.NoError(t, err)
	assert.Equal(t, "user-3", userID)
	assert.Equal(t, time.Hour, store.TTL())
}

func TestMemoryStateStore_ConsumeOnce(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	store := NewMemoryStateStore().(*memoryStateStore)
	store.now = clock.Now

	require.NoError(t, store.Save(ctx, "abc", 10*time.Minute))

	ok, err := store.Consume(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Consume(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, "late", time.Minute))
	clock.Advance(2 * time.Minute)
	ok, err = store.Consume(ctx, "late")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryLeaderboardCache(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	c := NewMemoryLeaderboardCache(time.Minute).(*memoryLeaderboardCache)
	c.now = clock.Now

	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	board := &entity.Leaderboard{Date: date, Entries: []*entity.LeaderboardEntry{{Rank: 1, UserID: "a"}}}

	_, ok, err := c.Get(ctx, date)
	require.NoError(t, err)
	assert.False(t, ok)

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
	_, ok, _ = c.Get(ctx, date)
	assert.False(t, ok)

	gen, err = c.Generation(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)

	stored, err = c.Set(ctx, board, gen)
	require.NoError(t, err)
	assert.True(t, stored)
	clock.Advance(time.Minute)
	_, ok, _ = c.Get(ctx, date)
	assert.False(t, ok)
}

func TestMemoryLeaderboardCache_StaleGenerationIsDropped(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryLeaderboardCache(time.Minute)

	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	other := date.AddDate(0, 0, -1)

	gen, err := c.Generation(ctx, date)
	require.NoError(t, err)

	// A check-in lands between reading the generation and storing the board.
	require.NoError(t, c.Invalidate(ctx, date))

	stored, err := c.Set(ctx, &entity.Leaderboard{Date: date}, gen)
	require.NoError(t, err)
	assert.False(t, stored)
	_, ok, _ := c.Get(ctx, date)
	assert.False(t, ok)

	// Generations are tracked per date.
	stored, err = c.Set(ctx, &entity.Leaderboard{Date: other}, 0)
	require.NoError(t, err)
	assert.True(t, stored)
}

func TestMemorySessionRevocationStore(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	store := NewMemorySessionRevocationStore().(*memorySessionRevocationStore)
	store.now = clock.Now

	require.NoError(t, store.Revoke(ctx, "jti-1", clock.Now().Add(time.Hour)))
	require.NoError(t, store.Revoke(ctx, "jti-old", clock.Now().Add(-time.Second)))

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "jti-old")
	require.NoError(t, err)
	assert.False(t, revoked)

	clock.Advance(time.Hour)
	revoked, _ = store.IsRevoked(ctx, "jti-1")
	assert.False(t, revoked)

	// Expired markers are pruned on the next revocation.
	require.NoError(t, store.Revoke(ctx, "jti-2", clock.Now().Add(time.Hour)))
	assert.Len(t, store.revoked, 1)
}
