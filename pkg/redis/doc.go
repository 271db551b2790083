// Package redis connects to the optional Redis instance used as the shared
// rate limiter backend and exposes a readiness probe for it.
package redis
