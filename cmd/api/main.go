package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/finwell-app/finwell/internal/analytics"
	"github.com/finwell-app/finwell/internal/config"
	"github.com/finwell-app/finwell/internal/database"
	finwellHttp "github.com/finwell-app/finwell/internal/http"
	analyticsHandler "github.com/finwell-app/finwell/internal/http/analytics"
	statementHandler "github.com/finwell-app/finwell/internal/http/statement"
	txHandler "github.com/finwell-app/finwell/internal/http/transaction"
	"github.com/finwell-app/finwell/internal/parser"
	"github.com/finwell-app/finwell/internal/statement"
	statementStore "github.com/finwell-app/finwell/internal/statement/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		statementService = statement.NewService(statementStore.New(db))
		statementParser  = parser.New()
		engine           = analytics.NewEngine(analytics.DefaultRules)
	)

	var (
		statementH = statementHandler.NewHandler(statementService, statementParser, cfg.Upload.MaxBytes, cfg.Upload.Timeout)
		txH        = txHandler.NewHandler(statementService, engine)
		analyticsH = analyticsHandler.NewHandler(statementService, engine)
	)

	router := finwellHttp.New(cfg.Auth.JWTSecret, statementH, txH, analyticsH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
