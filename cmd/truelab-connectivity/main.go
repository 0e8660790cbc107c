package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"truelab-connectivity/internal/config"
	httpapi "truelab-connectivity/internal/http"
	"truelab-connectivity/internal/logger"
	"truelab-connectivity/internal/pipeline"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "truelab-connectivity")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("Starting truelab-connectivity service",
		zap.String("addr", cfg.HTTP.Addr),
		zap.Int64("max_upload_mb", cfg.MaxUploadMB),
	)

	p := pipeline.New(cfg.Pipeline, zlog)
	handler := httpapi.NewConnectivityHandler(p, cfg, zlog)
	router := httpapi.NewRouter(zlog)
	router.RegisterConnectivityRoutes(handler)

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	zlog.Info("Received signal, shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("Error during shutdown", zap.Error(err))
	}

	zlog.Info("Service stopped")
}
