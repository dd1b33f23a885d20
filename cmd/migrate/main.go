package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/rohitYaduvanshi/Propertix-Backend/internal/repository"
	"github.com/rohitYaduvanshi/Propertix-Backend/pkg/config"
	"github.com/rohitYaduvanshi/Propertix-Backend/pkg/database"
	"github.com/rohitYaduvanshi/Propertix-Backend/pkg/logger"
)

func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL, database.Options{
		MaxOpenConns: 1,
		Verbose:      true,
		Logger:       log,
	})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := repository.Migrate(ctx, db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	fmt.Fprintln(os.Stdout, "migrations completed")
}
