package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rohitYaduvanshi/Propertix-Backend/internal/api"
	"github.com/rohitYaduvanshi/Propertix-Backend/internal/api/handlers"
	mw "github.com/rohitYaduvanshi/Propertix-Backend/internal/api/middleware"
	"github.com/rohitYaduvanshi/Propertix-Backend/internal/repository"
	"github.com/rohitYaduvanshi/Propertix-Backend/internal/services"
	"github.com/rohitYaduvanshi/Propertix-Backend/pkg/config"
	"github.com/rohitYaduvanshi/Propertix-Backend/pkg/database"
	"github.com/rohitYaduvanshi/Propertix-Backend/pkg/logger"
)

// ErrPlatformMode is returned by Serve when the platform owns the listener.
var ErrPlatformMode = errors.New("deploy mode is platform: the hosting platform invokes the handler")

// App owns the process-wide database pool and the HTTP handler built on it.
type App struct {
	cfg     *config.Config
	db      *gorm.DB
	handler http.Handler
}

// New opens PostgreSQL and wires the application. Callers must Close it.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL, database.Options{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		Verbose:         cfg.IsDevelopment(),
		Logger:          logger.L(),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	logger.L().Info("Database connected successfully")

	a, err := NewWithDB(ctx, cfg, db)
	if err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return a, nil
}

// NewWithDB wires the application around an already opened database.
// The App takes ownership of db.
func NewWithDB(ctx context.Context, cfg *config.Config, db *gorm.DB) (*App, error) {
	if cfg.DBAutoMigrate {
		if err := repository.Migrate(ctx, db); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		logger.L().Info("schema migrated")
	}

	userRepo := repository.NewUserRepository(db)
	userSvc := services.NewUserService(userRepo)

	router := api.NewRouter(api.Dependencies{
		CORS: mw.CORSOptions{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: cfg.CORSAllowedMethods,
		},
		UsersHandler: handlers.NewUsersHandler(userSvc),
		HealthHandler: handlers.NewHealthHandler(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}),
	})

	return &App{cfg: cfg, db: db, handler: router}, nil
}

// Handler is the fully wired HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Serve listens on the configured address until ctx is done, then shuts
// down gracefully within ShutdownTimeout.
func (a *App) Serve(ctx context.Context) error {
	if a.cfg.DeployMode == config.ModePlatform {
		return ErrPlatformMode
	}

	srv := &http.Server{
		Addr:              a.cfg.HTTPAddr(),
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.L().Info("shutdown requested")
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.L().Info("server exited gracefully")
	return nil
}

// Close releases the database pool.
func (a *App) Close() error {
	return database.Close(a.db)
}
