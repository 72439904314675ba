// Package logger builds configured log/slog loggers and provides typed
// attribute helpers so that log keys stay consistent across the codebase
// (user_id, contact_id, event_type, ...).
package logger
