package types

import (
	"errors"
	"net/http"

	appErr "github.com/rohitYaduvanshi/Propertix-Backend/pkg/errors"
)

const genericMessage = "internal server error"

// FromAppError renders the client-safe part of err. Wrapped causes and the
// text of non-AppErrors are never exposed.
func FromAppError(err error) *APIError {
	if err == nil {
		return nil
	}
	code := appErr.CodeOf(err)
	switch code {
	case appErr.CodeUnknown, appErr.CodeInternal:
		return &APIError{Code: string(appErr.CodeInternal), Message: genericMessage}
	}
	var ae *appErr.AppError
	errors.As(err, &ae)
	return &APIError{Code: string(code), Message: ae.Message}
}

// StatusFromError maps an error code to the HTTP status returned to clients.
func StatusFromError(err error) int {
	switch appErr.CodeOf(err) {
	case appErr.CodeInvalid:
		return http.StatusBadRequest
	case appErr.CodeNotFound:
		return http.StatusNotFound
	case appErr.CodeAlreadyExists:
		return http.StatusConflict
	case appErr.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
