package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSOptions is the configurable part of the CORS policy.
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
}

// CORS applies an origin allow-list with credentials permitted. Preflight
// requests get an empty 200 here and never reach the router.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   opts.AllowedMethods,
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
