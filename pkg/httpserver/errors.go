package httpserver

import "errors"

var (
	// ErrStart indicates the server could not begin serving.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates the server did not stop cleanly.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
)
