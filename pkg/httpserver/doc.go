// Package httpserver runs the API's http.Server with env-driven timeouts and
// graceful shutdown on context cancellation or SIGINT/SIGTERM, and provides
// liveness/readiness handlers.
package httpserver
