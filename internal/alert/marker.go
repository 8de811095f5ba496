package alert

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// MarkerStore persists the per-branch "last alerted date" used for
// daily de-duplication. Injected so the trigger stays testable.
type MarkerStore interface {
	LastAlertDate(ctx context.Context, branch string) (string, error)
	SetAlertDate(ctx context.Context, branch, date string) error
	ClearAlertDate(ctx context.Context, branch string) error
}

const markerKeyPrefix = "alert:last_date:"

// RedisMarkerStore keeps markers in Redis so every replica of the
// server shares the same de-duplication state.
type RedisMarkerStore struct {
	client *redis.Client
}

func NewRedisMarkerStore(client *redis.Client) *RedisMarkerStore {
	return &RedisMarkerStore{client: client}
}

func (s *RedisMarkerStore) LastAlertDate(ctx context.Context, branch string) (string, error) {
	date, err := s.client.Get(ctx, markerKeyPrefix+branch).Result()
	if err == redis.Nil {
		return "", nil
	}
	return date, err
}

func (s *RedisMarkerStore) SetAlertDate(ctx context.Context, branch, date string) error {
	// Markers expire after 48h; by then the date comparison has long
	// since stopped matching anyway.
	return s.client.Set(ctx, markerKeyPrefix+branch, date, 48*time.Hour).Err()
}

func (s *RedisMarkerStore) ClearAlertDate(ctx context.Context, branch string) error {
	return s.client.Del(ctx, markerKeyPrefix+branch).Err()
}

// MemoryMarkerStore is the fallback when Redis is down, and the test
// double. De-duplication then holds per process only.
type MemoryMarkerStore struct {
	mu    sync.Mutex
	dates map[string]string
}

func NewMemoryMarkerStore() *MemoryMarkerStore {
	return &MemoryMarkerStore{dates: make(map[string]string)}
}

func (s *MemoryMarkerStore) LastAlertDate(ctx context.Context, branch string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dates[branch], nil
}

func (s *MemoryMarkerStore) SetAlertDate(ctx context.Context, branch, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dates[branch] = date
	return nil
}

func (s *MemoryMarkerStore) ClearAlertDate(ctx context.Context, branch string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.dates, branch)
	return nil
}
