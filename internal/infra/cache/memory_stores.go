package cache

import (
	"context"
	"sync"
	"time"

	"checkin/internal/domain/entity"
	"checkin/internal/domain/service"
)

type memoryToken struct {
	userID    string
	expiresAt time.Time
}

// memoryTokenStore is the single-instance TokenStore. Tokens are lost on restart.
type memoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]memoryToken
	ttl    time.Duration
	now    func() time.Time
}

func NewMemoryTokenStore(ttl time.Duration) service.TokenStore {
	return &memoryTokenStore{
		tokens: make(map[string]memoryToken),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *memoryTokenStore) Issue(_ context.Context, userID string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.tokens[tokenDigest(token)] = memoryToken{userID: userID, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	return token, nil
}

func (s *memoryTokenStore) Resolve(_ context.Context, token string) (string, error) {
	digest := tokenDigest(token)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.tokens[digest]
	if !ok {
		return "", service.ErrTokenNotFound
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.tokens, digest)

		return "", service.ErrTokenExpired
	}

	return entry.userID, nil
}

func (s *memoryTokenStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.tokens, tokenDigest(token))
	s.mu.Unlock()

	return nil
}

func (s *memoryTokenStore) RevokeExpired(_ context.Context) (int, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for digest, entry := range s.tokens {
		if !now.Before(entry.expiresAt) {
			delete(s.tokens, digest)
			removed++
		}
	}

	return removed, nil
}

func (s *memoryTokenStore) TTL() time.Duration {
	return s.ttl
}

type memoryStateStore struct {
	mu     sync.Mutex
	states map[string]time.Time
	now    func() time.Time
}

func NewMemoryStateStore() service.StateStore {
	return &memoryStateStore{states: make(map[string]time.Time), now: time.Now}
}

func (s *memoryStateStore) Save(_ context.Context, state string, ttl time.Duration) error {
	s.mu.Lock()
	s.states[state] = s.now().Add(ttl)
	s.mu.Unlock()

	return nil
}

func (s *memoryStateStore) Consume(_ context.Context, state string) (bool, error) {
	s.mu.Lock()
	expiresAt, ok := s.states[state]
	if ok {
		delete(s.states, state)
	}
	s.mu.Unlock()

	return ok && s.now().Before(expiresAt), nil
}

type memoryBoard struct {
	board     *entity.Leaderboard
	expiresAt time.Time
}

type memoryLeaderboardCache struct {
	mu          sync.Mutex
	boards      map[string]memoryBoard
	generations map[string]int64
	ttl         time.Duration
	now         func() time.Time
}

func NewMemoryLeaderboardCache(ttl time.Duration) service.LeaderboardCache {
	return &memoryLeaderboardCache{
		boards:      make(map[string]memoryBoard),
		generations: make(map[string]int64),
		ttl:         ttl,
		now:         time.Now,
	}
}

func (c *memoryLeaderboardCache) Get(_ context.Context, date time.Time) (*entity.Leaderboard, bool, error) {
	c.mu.Lock()
	entry, ok := c.boards[entity.FormatDate(date)]
	c.mu.Unlock()

	if !ok || !c.now().Before(entry.expiresAt) {
		return nil, false, nil
	}

	return entry.board, true, nil
}

func (c *memoryLeaderboardCache) Generation(_ context.Context, date time.Time) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.generations[entity.FormatDate(date)], nil
}

func (c *memoryLeaderboardCache) Set(_ context.Context, board *entity.Leaderboard, generation int64) (bool, error) {
	key := entity.FormatDate(board.Date)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generations[key] != generation {
		return false, nil
	}
	c.boards[key] = memoryBoard{board: board, expiresAt: c.now().Add(c.ttl)}

	return true, nil
}

func (c *memoryLeaderboardCache) Invalidate(_ context.Context, date time.Time) error {
	key := entity.FormatDate(date)

	c.mu.Lock()
	delete(c.boards, key)
	c.generations[key]++
	c.mu.Unlock()

	return nil
}

type memorySessionRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemorySessionRevocationStore() service.SessionRevocationStore {
	return &memorySessionRevocationStore{revoked: make(map[string]time.Time), now: time.Now}
}

func (s *memorySessionRevocationStore) Revoke(_ context.Context, sessionID string, expiresAt time.Time) error {
	now := s.now()
	if !now.Before(expiresAt) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, until := range s.revoked {
		if !now.Before(until) {
			delete(s.revoked, id)
		}
	}
	s.revoked[sessionID] = expiresAt

	return nil
}

func (s *memorySessionRevocationStore) IsRevoked(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	until, ok := s.revoked[sessionID]
	s.mu.Unlock()

	return ok && s.now().Before(until), nil
}
