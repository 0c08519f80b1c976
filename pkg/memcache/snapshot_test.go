package mem

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapshots_SetGetExpire(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	s := NewSnapshots[[]string]()
	s.now = func() time.Time { return now }

	s.Set("catalog", []string{"a", "b"}, time.Minute)
	got, ok := s.Get("catalog")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	now = now.Add(2 * time.Minute)
	_, ok = s.Get("catalog")
	assert.False(t, ok)
	assert.Empty(t, s.data)
}

func TestSnapshots_ZeroTTLDisablesCaching(t *testing.T) {
	s := NewSnapshots[int]()
	s.Set("k", 1, 0)
	_, ok := s.Get("k")
	assert.False(t, ok)
}

func TestSnapshots_Invalidate(t *testing.T) {
	s := NewSnapshots[int]()
	s.Set("k", 7, time.Hour)
	s.Invalidate("k")
	_, ok := s.Get("k")
	assert.False(t, ok)
}

func TestSnapshots_ConcurrentAccess(t *testing.T) {
	s := NewSnapshots[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			s.Set("k", n, time.Hour)
		}(i)
		go func() {
			defer wg.Done()
			s.Get("k")
		}()
	}
	wg.Wait()
	_, ok := s.Get("k")
	assert.True(t, ok)
}
