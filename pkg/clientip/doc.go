// Package clientip resolves the caller's IP address for per-client rate
// limiting. Forwarding headers are honored only when explicitly trusted,
// since any client can set them.
package clientip
