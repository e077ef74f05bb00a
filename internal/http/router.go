package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/cashbook/internal/http/cashbook"
	"github.com/MrJamesThe3rd/cashbook/internal/http/category"
	"github.com/MrJamesThe3rd/cashbook/internal/http/recipient"
	"github.com/MrJamesThe3rd/cashbook/internal/telemetry"
)

type Options struct {
	AllowedOrigins []string
	// Authenticate rejects unauthenticated requests to /api/v1.
	Authenticate func(http.Handler) http.Handler
}

func New(
	opts Options,
	cashbooksV1 *cashbook.Handler,
	categoriesV1 *category.Handler,
	recipientsV1 *recipient.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(telemetry.Middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		if opts.Authenticate != nil {
			r.Use(opts.Authenticate)
		}

		r.Route("/cashbooks", func(r chi.Router) {
			r.Route("/{cashbookID}/categories", categoriesV1.Routes)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json", "multipart/form-data"))
				cashbooksV1.Routes(r)
			})
		})

		r.Route("/chits", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			cashbooksV1.MoveRoutes(r)
		})

		r.Route("/units/{unitID}/recipients", recipientsV1.Routes)
	})

	return router
}
