package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/rohitYaduvanshi/Propertix-Backend/internal/app"
	"github.com/rohitYaduvanshi/Propertix-Backend/pkg/config"
	"github.com/rohitYaduvanshi/Propertix-Backend/pkg/logger"
)

// @title        Propertix Backend API
// @version      1.0
// @description  Wallet-addressed user directory for the Propertix frontend.
// @BasePath     /

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("Starting Propertix Backend",
		zap.String("env", cfg.AppEnv),
		zap.String("mode", cfg.DeployMode),
		zap.String("addr", cfg.HTTPAddr()),
		zap.Strings("cors_origins", cfg.CORSAllowedOrigins),
	)

	if cfg.DeployMode == config.ModePlatform {
		log.Fatal("DEPLOY_MODE=platform is served through api.Handler; unset it to listen directly")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to start application", zap.Error(err))
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Error("database close error", zap.Error(err))
		}
	}()

	if err := a.Serve(ctx); err != nil {
		log.Error("server error", zap.Error(err))
	}
}
