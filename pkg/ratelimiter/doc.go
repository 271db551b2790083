// Package ratelimiter implements token-bucket rate limiting for the public
// authentication endpoints.
//
// A Bucket pairs a Config with a Store. MemoryStore keeps buckets in process
// using golang.org/x/time/rate; RedisStore shares them across instances with
// an atomic Lua script. Middleware wires a Bucket into an http.Handler chain
// and reports X-RateLimit-* headers.
//
//	bucket, _ := ratelimiter.NewBucket(store, cfg, "login:")
//	r.With(ratelimiter.Middleware(bucket, func(r *http.Request) string {
//		return clientip.FromContext(r.Context())
//	})).Post("/login", login)
package ratelimiter
