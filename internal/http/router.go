package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	analyticsHandler "github.com/finwell-app/finwell/internal/http/analytics"
	"github.com/finwell-app/finwell/internal/http/middleware"
	statementHandler "github.com/finwell-app/finwell/internal/http/statement"
	transactionHandler "github.com/finwell-app/finwell/internal/http/transaction"
)

func New(
	jwtSecret string,
	statementsV1 *statementHandler.Handler,
	transactionsV1 *transactionHandler.Handler,
	analyticsV1 *analyticsHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(jwtSecret))

		r.Route("/statements", statementsV1.Routes)
		r.Route("/transactions", transactionsV1.Routes)
		r.Route("/analytics", analyticsV1.Routes)
	})

	return router
}
