package ratelimiter

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// consumeScript refills the bucket continuously from the elapsed time, then
// takes the requested tokens if enough are available. It returns
// {allowed, floor(tokens), ms until the next request can pass}.
var consumeScript = redis.NewScript(`
local capacity = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local requested = tonumber(ARGV[4])
local ttl = tonumber(ARGV[5])

local state = redis.call('HMGET', KEYS[1], 'tokens', 'ts')
local tokens = tonumber(state[1])
local ts = tonumber(state[2])
if tokens == nil or ts == nil then
	tokens = capacity
	ts = now
end
if now > ts then
	tokens = math.min(capacity, tokens + (now - ts) * rate)
	ts = now
end

local allowed = 1
if requested > 0 then
	if tokens >= requested then
		tokens = tokens - requested
	else
		allowed = 0
	end
end

redis.call('HSET', KEYS[1], 'tokens', tostring(tokens), 'ts', tostring(ts))
redis.call('PEXPIRE', KEYS[1], ttl)

local needed = math.max(requested, 1)
local wait = 0
if tokens < needed then
	wait = math.ceil((needed - tokens) / rate)
end
return {allowed, math.floor(tokens), wait}
`)

// RedisStore shares buckets between instances through Redis. Each bucket is
// a hash updated atomically by a Lua script and expires once it would be full.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, now: time.Now}
}

func (s *RedisStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (int, time.Time, error) {
	now := s.now()
	perMs := config.perSecond() / 1000
	ttl := config.fullRefill() + time.Second

	res, err := consumeScript.Run(ctx, s.client, []string{s.prefix + key},
		config.Capacity,
		strconv.FormatFloat(perMs, 'f', -1, 64),
		now.UnixMilli(),
		tokens,
		ttl.Milliseconds(),
	).Int64Slice()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, time.Time{}, errors.Join(ErrContextCancelled, ctxErr)
		}
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}
	if len(res) != 3 {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, errors.New("unexpected script reply"))
	}

	remaining := int(res[1])
	if res[0] == 0 {
		remaining = -1
	}
	return remaining, now.Add(time.Duration(res[2]) * time.Millisecond), nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
