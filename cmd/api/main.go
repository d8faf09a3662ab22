package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ghoststack/bizboost/internal/analyzer"
	"github.com/ghoststack/bizboost/internal/api"
	"github.com/ghoststack/bizboost/internal/planner"
	"github.com/ghoststack/bizboost/internal/platform/config"
	"github.com/ghoststack/bizboost/internal/platform/logger"
	"github.com/ghoststack/bizboost/internal/platform/metrics"
	"github.com/ghoststack/bizboost/internal/scanner"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	m := metrics.New()

	fetcher := scanner.NewHTTPClient(cfg.FetchTimeout)
	siteScanner := scanner.New(fetcher, log, m, cfg.ScanConcurrency)

	analyzeService := analyzer.NewService(siteScanner, log, m)
	planService := planner.NewService(log, m)

	router := api.NewRouter(
		log,
		m,
		cfg.AllowedOrigins,
		analyzer.NewTransport(analyzeService, log),
		planner.NewTransport(planService, log),
	)

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}
