package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/agencyscope/agencyscope/internal/api"
	"github.com/agencyscope/agencyscope/internal/billing"
	"github.com/agencyscope/agencyscope/internal/directory"
	"github.com/agencyscope/agencyscope/internal/identity"
	"github.com/agencyscope/agencyscope/internal/quota"
	"github.com/agencyscope/agencyscope/internal/subscription"
	"github.com/agencyscope/agencyscope/pkg/config"
	"github.com/agencyscope/agencyscope/pkg/httpserver"
	"github.com/agencyscope/agencyscope/pkg/logger"
	"github.com/agencyscope/agencyscope/pkg/pg"
)

func main() {
	var logCfg logger.Config
	config.MustLoad(&logCfg)
	log := logger.NewFromConfig(logCfg)
	slog.SetDefault(log)

	if err := run(context.Background(), log); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	var (
		dbCfg      pg.Config
		httpCfg    httpserver.Config
		stripeCfg  billing.StripeConfig
		webhookCfg subscription.WebhookConfig
	)
	config.MustLoad(&dbCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&stripeCfg)
	config.MustLoad(&webhookCfg)

	pool, err := pg.Connect(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, dbCfg, log); err != nil {
		return err
	}

	resolver := identity.NewResolver(identity.NewPGStore(pool), log)
	tracker := quota.NewTracker(quota.NewPGStore(pool), log)

	subStore := subscription.NewPGStore(pool)
	subService := subscription.NewService(subStore, billing.NewStripeProvider(stripeCfg), log)
	webhook := subscription.NewWebhookHandler(webhookCfg, subStore, resolver, log)

	handler := api.NewHandler(tracker, subService, directory.NewPGStore(pool), log)
	router := api.NewRouter(handler, resolver, webhook,
		httpserver.HealthCheckHandler(ctx, log, pg.Healthcheck(pool)))

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("server listening", slog.String("addr", httpCfg.Addr))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("server stopped")
		}),
	)

	return srv.Run(ctx, router)
}
