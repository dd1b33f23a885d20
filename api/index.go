// Package handler is the platform-hosted entrypoint. Serverless runtimes
// such as Vercel's Go runtime call Handler once per request instead of
// running cmd/api.
package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rohitYaduvanshi/Propertix-Backend/internal/app"
	"github.com/rohitYaduvanshi/Propertix-Backend/pkg/config"
	"github.com/rohitYaduvanshi/Propertix-Backend/pkg/logger"
)

const unavailableBody = `{"success":false,"error":{"code":"unavailable","message":"service unavailable"}}`

var (
	mu sync.Mutex
	h  http.Handler
)

// newHandler builds the request handler for a loaded config. The pool it
// opens lives as long as the instance; the platform reclaims it on teardown.
var newHandler = func(ctx context.Context, cfg *config.Config) (http.Handler, error) {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return a.Handler(), nil
}

// current returns the bootstrapped handler, building it if no earlier
// attempt succeeded. Failures are not kept, so the next request retries.
func current() (http.Handler, error) {
	mu.Lock()
	defer mu.Unlock()
	if h != nil {
		return h, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg.DeployMode = config.ModePlatform

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	built, err := newHandler(ctx, cfg)
	if err != nil {
		log.Error("platform bootstrap failed", zap.Error(err))
		return nil, err
	}
	h = built
	return h, nil
}

// Handler serves one platform-invoked request.
func Handler(w http.ResponseWriter, r *http.Request) {
	next, err := current()
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(unavailableBody))
		return
	}
	next.ServeHTTP(w, r)
}
