// Package mem holds small in-process caches.
package mem

import (
	"sync"
	"time"
)

type SnapshotStore[T any] interface {
	Set(key string, value T, ttl time.Duration)

	// Get returns the value for key if present and not expired.
	Get(key string) (T, bool)

	Invalidate(key string)
}

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Snapshots is a TTL map guarded by a RWMutex. Expired entries are dropped
// lazily on Get.
type Snapshots[T any] struct {
	mu   sync.RWMutex
	data map[string]entry[T]
	now  func() time.Time
}

func NewSnapshots[T any]() *Snapshots[T] {
	return &Snapshots[T]{
		data: make(map[string]entry[T]),
		now:  time.Now,
	}
}

// Set stores value. A non-positive ttl is a no-op, which disables caching.
func (s *Snapshots[T]) Set(key string, value T, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry[T]{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *Snapshots[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	var zero T
	if !ok {
		return zero, false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		if cur, still := s.data[key]; still && cur.expiresAt.Equal(e.expiresAt) {
			delete(s.data, key)
		}
		s.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

func (s *Snapshots[T]) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
