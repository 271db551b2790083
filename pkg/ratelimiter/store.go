package ratelimiter

import (
	"context"
	"time"
)

// Store persists token buckets. ConsumeTokens takes tokens from the bucket
// identified by key and reports what is left; a negative remaining value
// means the request was denied and nothing was consumed. Zero tokens only
// reads the bucket state.
type Store interface {
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}
