package ratelimiter

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MemoryStore keeps one golang.org/x/time/rate limiter per key in process
// memory. Idle keys are evicted by a background sweeper once their bucket
// would have refilled completely.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*rate.Limiter
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCleanupInterval starts the idle-key sweeper with the given period.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(s *MemoryStore) {
		if d > 0 {
			go s.sweep(d)
		}
	}
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]*rate.Limiter),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (int, time.Time, error) {
	if err := ctx.Err(); err != nil {
		return 0, time.Time{}, errors.Join(ErrContextCancelled, err)
	}

	now := s.now()
	limit := rate.Limit(config.perSecond())

	s.mu.Lock()
	lim, ok := s.entries[key]
	if !ok {
		lim = rate.NewLimiter(limit, config.Capacity)
		s.entries[key] = lim
	}
	s.mu.Unlock()

	allowed := tokens == 0 || lim.AllowN(now, tokens)
	available := lim.TokensAt(now)

	remaining := int(math.Floor(available))
	if !allowed {
		remaining = -1
	}

	needed := float64(max(tokens, 1))
	resetAt := now
	if available < needed {
		wait := (needed - available) / float64(limit)
		resetAt = now.Add(time.Duration(math.Ceil(wait * float64(time.Second))))
	}

	return remaining, resetAt, nil
}

func (s *MemoryStore) Reset(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// Close stops the sweeper. The store remains usable.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.evictIdle()
		}
	}
}

func (s *MemoryStore) evictIdle() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, lim := range s.entries {
		if lim.TokensAt(now) >= float64(lim.Burst()) {
			delete(s.entries, key)
		}
	}
}

// Len reports the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
