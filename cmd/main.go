package main

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/surhub/startup-weekend/internal/api"
	"github.com/surhub/startup-weekend/internal/auth"
	"github.com/surhub/startup-weekend/internal/config"
	"github.com/surhub/startup-weekend/internal/i18n"
	"github.com/surhub/startup-weekend/internal/localstore"
	"github.com/surhub/startup-weekend/internal/repository"
	"github.com/surhub/startup-weekend/internal/service"
	"github.com/surhub/startup-weekend/internal/session"
	"github.com/surhub/startup-weekend/pkg/logger"
)

func main() {
	logger, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("starting application")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}
	if cfg.TokenSecret != "" {
		auth.TokenSecretKey = cfg.TokenSecret
	}

	store, err := localstore.Open(cfg.StorePath)
	if err != nil {
		logger.Fatal("failed to open local store", zap.Error(err))
	}
	defer store.Close()

	if err = store.Ping(context.Background()); err != nil {
		logger.Fatal("failed to ping local store", zap.Error(err))
	}

	logger.Info("local store ready", zap.String("path", cfg.StorePath))

	resolver, err := i18n.NewResolver(context.Background(), store)
	if err != nil {
		logger.Fatal("failed to load locale bundles", zap.Error(err))
	}

	userRepo := repository.NewMemoryUserRepository()
	ideaRepo := repository.NewMemoryIdeaRepository()
	teamRepo := repository.NewMemoryTeamRepository()
	scheduleRepo := repository.NewMemoryScheduleRepository()

	identity := service.NewIdentityService().WithUserRepo(userRepo).WithLatency(cfg.Latency)
	ideas := service.NewIdeaService().WithIdeaRepo(ideaRepo).WithLatency(cfg.Latency)
	teams := service.NewTeamService().WithTeamRepo(teamRepo).WithResolver(resolver).WithLatency(cfg.Latency)
	schedule := service.NewScheduleService().WithScheduleRepo(scheduleRepo).WithResolver(resolver).WithLatency(cfg.Latency)

	holder := session.NewHolder(store, identity, cfg.TokenTTL)
	holder.Hydrate(context.Background())

	e := echo.New()

	handler := api.NewHandler(logger).
		WithIdentityService(identity).
		WithIdeaService(ideas).
		WithTeamService(teams).
		WithScheduleService(schedule).
		WithSessionHolder(holder).
		WithResolver(resolver).
		WithEventWindow(cfg.EventStart, cfg.EventEnd).
		WithHealthChecker(api.MustNewHealthChecker(api.LocalStoreCheck(store)))

	handler.RegisterRoutes(e)

	logger.Info("server starting", zap.String("addr", cfg.Addr))
	if err = e.Start(cfg.Addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
