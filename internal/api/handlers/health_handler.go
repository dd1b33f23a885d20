package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/rohitYaduvanshi/Propertix-Backend/internal/api/types"
	appErr "github.com/rohitYaduvanshi/Propertix-Backend/pkg/errors"
	"github.com/rohitYaduvanshi/Propertix-Backend/pkg/logger"
)

const livenessMessage = "Propertix Backend is live"

// Pinger reports whether the database is reachable.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	ping Pinger
}

func NewHealthHandler(ping Pinger) *HealthHandler { return &HealthHandler{ping: ping} }

// Root answers GET / with a plain-text liveness message.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(livenessMessage))
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{"status": "ok"}})
}

func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		if err := h.ping(r.Context()); err != nil {
			logger.L().Warn("readiness check failed", zap.Error(err))
			writeError(w, appErr.Wrap(err, appErr.CodeUnavailable, "database unavailable"))
			return
		}
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{"status": "ready"}})
}
