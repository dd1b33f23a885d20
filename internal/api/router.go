package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/rohitYaduvanshi/Propertix-Backend/docs"
	"github.com/rohitYaduvanshi/Propertix-Backend/internal/api/handlers"
	mw "github.com/rohitYaduvanshi/Propertix-Backend/internal/api/middleware"
)

type Dependencies struct {
	CORS          mw.CORSOptions
	UsersHandler  *handlers.UsersHandler
	HealthHandler *handlers.HealthHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS(dep.CORS))
	r.Use(chimid.Compress(5))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	hh := dep.HealthHandler
	r.Get("/", hh.Root)
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	r.Route("/api/auth", func(ar chi.Router) {
		ar.Post("/register", dep.UsersHandler.Register)
		ar.Get("/user/{address}", dep.UsersHandler.GetByWallet)
	})

	return r
}
