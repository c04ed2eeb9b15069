package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/MrJamesThe3rd/finnypolicy/internal/config"
	"github.com/MrJamesThe3rd/finnypolicy/internal/database"
	policyHttp "github.com/MrJamesThe3rd/finnypolicy/internal/http"
	policyHandler "github.com/MrJamesThe3rd/finnypolicy/internal/http/policy"
	reportHandler "github.com/MrJamesThe3rd/finnypolicy/internal/http/report"
	txHandler "github.com/MrJamesThe3rd/finnypolicy/internal/http/transaction"
	violationHandler "github.com/MrJamesThe3rd/finnypolicy/internal/http/violation"
	"github.com/MrJamesThe3rd/finnypolicy/internal/importer"
	"github.com/MrJamesThe3rd/finnypolicy/internal/policy"
	policyCache "github.com/MrJamesThe3rd/finnypolicy/internal/policy/cache"
	policyStore "github.com/MrJamesThe3rd/finnypolicy/internal/policy/store"
	"github.com/MrJamesThe3rd/finnypolicy/internal/report"
	"github.com/MrJamesThe3rd/finnypolicy/internal/transaction"
	txStore "github.com/MrJamesThe3rd/finnypolicy/internal/transaction/store"
	"github.com/MrJamesThe3rd/finnypolicy/internal/violation"
	violationStore "github.com/MrJamesThe3rd/finnypolicy/internal/violation/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DB.Migrate {
		if err := database.Migrate(ctx, db); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	var cacheClient policyCache.Client

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Warn("redis unreachable, policy configs will be loaded from the database", "addr", cfg.Redis.Addr, "error", err)
		}

		cacheClient = rdb
	}

	vStore := violationStore.New(db)

	var (
		transactionService = transaction.NewService(txStore.New(db))
		policyService      = policy.NewService(policyStore.New(db))
		configCache        = policyCache.New(cacheClient, policyService, cfg.Redis.TTL)
		violationService   = violation.NewService(vStore, transactionService, configCache, cfg.Violations.Concurrency)
		importService      = importer.NewService()
		reportService      = report.NewService(transactionService, vStore)
	)

	var (
		transactionH = txHandler.NewHandler(transactionService, violationService)
		violationH   = violationHandler.NewHandler(violationService, cfg.Violations.DefaultLocale)
		policyH      = policyHandler.NewHandler(policyService, importService, configCache, violationService)
		reportH      = reportHandler.NewHandler(reportService, cfg.Violations.DefaultLocale)
	)

	router := policyHttp.New(policyHttp.Options{
		CORSOrigins: cfg.Server.CORSOrigins,
		Timeout:     cfg.Server.Timeout,
		JWTSecret:   cfg.Auth.JWTSecret,
	}, transactionH, violationH, policyH, reportH)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shut down server", "error", err)
		}
	}()

	slog.Info("starting server", "name", cfg.App.Name, "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
