package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a single-process Store for tests and redis-less setups.
// Same window arithmetic as RedisStore; a janitor sweeps keys whose window
// has long passed.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	idleTTL time.Duration
}

type memoryEntry struct {
	count    int64
	lastSeen time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		idleTTL: 15 * time.Minute,
	}
}

func (s *MemoryStore) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok {
		ent = &memoryEntry{}
		s.entries[key] = ent
	}
	ent.count++
	ent.lastSeen = now
	return ent.count, nil
}

func (s *MemoryStore) Cleanup() {
	cutoff := time.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, ent := range s.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}

// StartJanitor sweeps idle counters until the context is cancelled.
func (s *MemoryStore) StartJanitor(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup()
			}
		}
	}()
}
