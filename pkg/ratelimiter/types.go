package ratelimiter

import "time"

// Result describes the bucket after a request.
type Result struct {
	Limit     int       // bucket capacity
	Remaining int       // tokens left; negative when the request was denied
	ResetAt   time.Time // when enough tokens are available for another request
}

func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is zero for allowed requests.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(time.Until(r.ResetAt), 0)
}

// Config describes a token bucket: up to Capacity tokens, refilled at
// RefillRate tokens per RefillInterval.
type Config struct {
	Capacity       int           `env:"CAPACITY" envDefault:"10"`
	RefillRate     int           `env:"REFILL_RATE" envDefault:"5"`
	RefillInterval time.Duration `env:"REFILL_INTERVAL" envDefault:"1m"`
}

// perSecond is the refill rate in tokens per second.
func (c Config) perSecond() float64 {
	return float64(c.RefillRate) / c.RefillInterval.Seconds()
}

// fullRefill is how long an empty bucket takes to fill up.
func (c Config) fullRefill() time.Duration {
	return time.Duration(float64(c.Capacity) / c.perSecond() * float64(time.Second))
}
