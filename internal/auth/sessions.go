package auth

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barbershop-manager/internal/infra/cache"
)

// SessionStore guarda os jti vivos; SignOut revoga removendo a chave.
type SessionStore interface {
	Save(ctx context.Context, jti, accountID string, ttl time.Duration) error
	Exists(ctx context.Context, jti string) (bool, error)
	Revoke(ctx context.Context, jti string) error
}

type cmdable interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type RedisSessions struct {
	store cmdable
}

func NewRedisSessions(client *redis.Client) *RedisSessions {
	return &RedisSessions{store: client}
}

func sessionKey(jti string) string {
	return cache.Key("session", jti)
}

func (s *RedisSessions) Save(ctx context.Context, jti, accountID string, ttl time.Duration) error {
	return s.store.Set(ctx, sessionKey(jti), accountID, ttl).Err()
}

func (s *RedisSessions) Exists(ctx context.Context, jti string) (bool, error) {
	n, err := s.store.Exists(ctx, sessionKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisSessions) Revoke(ctx context.Context, jti string) error {
	return s.store.Del(ctx, sessionKey(jti)).Err()
}

// MemorySessions é usado quando não há redis configurado (processo único).
type MemorySessions struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	now      func() time.Time
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{sessions: map[string]time.Time{}, now: time.Now}
}

func (s *MemorySessions) Save(_ context.Context, jti, _ string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[jti] = s.now().Add(ttl)
	return nil
}

func (s *MemorySessions) Exists(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.sessions[jti]
	if !ok {
		return false, nil
	}
	if !s.now().Before(exp) {
		delete(s.sessions, jti)
		return false, nil
	}
	return true, nil
}

func (s *MemorySessions) Revoke(_ context.Context, jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, jti)
	return nil
}
