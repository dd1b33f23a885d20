package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rohitYaduvanshi/Propertix-Backend/internal/api/types"
	appErr "github.com/rohitYaduvanshi/Propertix-Backend/pkg/errors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError derives the status from the error code.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, types.StatusFromError(err), types.APIResponse{Success: false, Error: types.FromAppError(err)})
}

func writeErrorStr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.APIResponse{Success: false, Error: &types.APIError{Code: string(appErr.CodeInvalid), Message: msg}})
}

// NotFound keeps unmatched routes in the JSON error envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, types.APIResponse{Success: false, Error: &types.APIError{Code: string(appErr.CodeNotFound), Message: "route not found"}})
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, types.APIResponse{Success: false, Error: &types.APIError{Code: string(appErr.CodeInvalid), Message: "method not allowed"}})
}
