// Package httpserver wraps net/http's Server with graceful shutdown on
// context cancellation or SIGINT/SIGTERM, functional options, env-driven
// configuration, and a health check handler.
package httpserver
