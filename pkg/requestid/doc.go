// Package requestid assigns every HTTP request a correlation id, exposes it
// through the request context and the X-Request-ID response header, and
// feeds it to the logger via LoggerExtractor.
package requestid
