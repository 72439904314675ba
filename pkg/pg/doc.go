// Package pg bootstraps the PostgreSQL layer: a pgx/v5 connection pool with
// retry on startup, goose schema migrations, a health check closure, and
// error classification helpers for unique/foreign key violations.
//
// Typical startup sequence:
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil { ... }
package pg
