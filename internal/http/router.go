package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/finnypolicy/internal/http/auth"
	"github.com/MrJamesThe3rd/finnypolicy/internal/http/policy"
	"github.com/MrJamesThe3rd/finnypolicy/internal/http/report"
	"github.com/MrJamesThe3rd/finnypolicy/internal/http/transaction"
	"github.com/MrJamesThe3rd/finnypolicy/internal/http/violation"
)

type Options struct {
	CORSOrigins []string
	Timeout     time.Duration

	// JWTSecret enables bearer-token authentication on the API when set.
	JWTSecret string
}

func New(
	opts Options,
	transactionsV1 *transaction.Handler,
	violationsV1 *violation.Handler,
	policiesV1 *policy.Handler,
	reportsV1 *report.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(r chi.Router) {
		if opts.JWTSecret != "" {
			r.Use(auth.Middleware([]byte(opts.JWTSecret)))
		}

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
			violationsV1.Routes(r)
		})

		r.Route("/policies", policiesV1.Routes)

		r.Route("/reports", reportsV1.Routes)
	})

	return router
}
