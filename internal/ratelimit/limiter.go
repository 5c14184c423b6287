// Package ratelimit implements fixed-window request budgets over a shared
// counter store. Each bucket is an independent named Limiter constructed once
// at startup and reused for every request.
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Store is the shared counter backing a limiter. Incr must be an atomic
// read-modify-write so concurrent bursts are never under-counted.
type Store interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Result is the limiter decision plus the metadata exposed to callers as
// X-RateLimit headers.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

type Limiter struct {
	name   string
	limit  int
	window time.Duration
	store  Store
	prefix string
}

type Option func(*Limiter)

func WithPrefix(prefix string) Option {
	return func(l *Limiter) { l.prefix = prefix }
}

func New(name string, limit int, window time.Duration, store Store, opts ...Option) *Limiter {
	l := &Limiter{
		name:   name,
		limit:  limit,
		window: window,
		store:  store,
		prefix: "gf:rl",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Check counts one call for subject in the current window and decides
// whether it fits the budget. A new window starts exactly at ResetAt;
// expired-window counts are discarded, not carried over.
//
// On store failure Check fails open: the returned Result allows the call and
// the error is surfaced for logging.
func (l *Limiter) Check(ctx context.Context, subject string) (Result, error) {
	now := time.Now()
	winSecs := int64(l.window / time.Second)
	idx := now.Unix() / winSecs
	resetAt := time.Unix((idx+1)*winSecs, 0)

	key := fmt.Sprintf("%s:%s:%s:%d", l.prefix, l.name, subject, idx)

	count, err := l.store.Incr(ctx, key, l.window)
	if err != nil {
		return Result{Allowed: true, Limit: l.limit, Remaining: l.limit, ResetAt: resetAt}, err
	}

	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   count <= int64(l.limit),
		Limit:     l.limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}
