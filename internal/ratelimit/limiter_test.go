package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLimiterDeniesAboveBudget(t *testing.T) {
	l := New("test:list", 3, time.Minute, NewMemoryStore())
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		res, err := l.Check(ctx, "alice")
		if err != nil {
			t.Fatalf("check %d: %v", i, err)
		}
		if !res.Allowed {
			t.Fatalf("call %d should be within budget", i)
		}
		if res.Remaining != 3-i {
			t.Fatalf("call %d: got remaining %d, want %d", i, res.Remaining, 3-i)
		}
	}

	res, err := l.Check(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if res.Allowed {
		t.Fatal("call over budget must be denied")
	}
	if res.Remaining != 0 {
		t.Fatalf("got remaining %d after denial, want 0", res.Remaining)
	}
	if !res.ResetAt.After(time.Now()) {
		t.Fatal("reset must point at the next window boundary")
	}
}

func TestLimiterSubjectsAreIndependent(t *testing.T) {
	l := New("test:list", 1, time.Minute, NewMemoryStore())
	ctx := context.Background()

	if res, _ := l.Check(ctx, "alice"); !res.Allowed {
		t.Fatal("first call for alice should pass")
	}
	if res, _ := l.Check(ctx, "alice"); res.Allowed {
		t.Fatal("second call for alice should be denied")
	}
	if res, _ := l.Check(ctx, "bob"); !res.Allowed {
		t.Fatal("bob must not be affected by alice's budget")
	}
}

func TestLimiterBucketsAreIndependent(t *testing.T) {
	store := NewMemoryStore()
	reads := New("test:list", 1, time.Minute, store)
	writes := New("test:create", 1, time.Minute, store)
	ctx := context.Background()

	if res, _ := reads.Check(ctx, "alice"); !res.Allowed {
		t.Fatal("read should pass")
	}
	if res, _ := writes.Check(ctx, "alice"); !res.Allowed {
		t.Fatal("write bucket must not share the read counter")
	}
}

type failingStore struct{}

func (failingStore) Incr(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("store down")
}

func TestLimiterFailsOpenOnStoreError(t *testing.T) {
	l := New("test:list", 1, time.Minute, failingStore{})

	res, err := l.Check(context.Background(), "alice")
	if err == nil {
		t.Fatal("store error must be surfaced for logging")
	}
	if !res.Allowed {
		t.Fatal("store failure must not block traffic")
	}
	if res.Remaining != res.Limit {
		t.Fatalf("fail-open result should report a full budget, got %d", res.Remaining)
	}
}

func TestMemoryStoreCleanupDropsIdleCounters(t *testing.T) {
	s := NewMemoryStore()
	s.idleTTL = 0

	if _, err := s.Incr(context.Background(), "k", time.Minute); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	s.Cleanup()

	count, err := s.Incr(context.Background(), "k", time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("swept counter must restart at 1, got %d", count)
	}
}
