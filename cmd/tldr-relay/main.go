package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/csheth/tldr/internal/config"
	"github.com/csheth/tldr/internal/llm"
	"github.com/csheth/tldr/internal/relay"
)

func main() {
	cfg, err := config.LoadRelay()
	if err != nil {
		fallback, _ := zap.NewProduction()
		fallback.Fatal("failed to load relay config", zap.Error(err))
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		logger, _ = zap.NewProduction()
		logger.Warn("invalid LOG_LEVEL, using info", zap.String("level", cfg.LogLevel), zap.Error(err))
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	client, mode, err := llm.New(cfg.LLM())
	if err != nil {
		logger.Fatal("failed to initialize llm client", zap.Error(err))
	}
	if mode == llm.ModeDemo {
		logger.Warn("no API key configured, serving demo summaries")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	server := relay.New(relay.Options{
		Client:   client,
		Mode:     mode,
		Logger:   logger,
		Registry: registry,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("relay starting",
			zap.String("addr", srv.Addr),
			zap.String("provider", client.Name()),
			zap.String("mode", mode.String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down relay...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}
	logger.Info("relay exited")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	return zcfg.Build()
}
