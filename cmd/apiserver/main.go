package main

// @title           Storefront API
// @version         1.0
// @description     Esports team storefront: catalog, content, checkout and shipping quotes

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey AdminToken
// @in header
// @name Authorization

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/app/config"
	"storefront/internal/app/pkg/logger"
)

var configPath = flag.String("config", "config/config.yaml", "path to the yaml config file, empty for env only")

func main() {
	flag.Parse()

	// 1. load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := context.Background()

	// 2. wire the app
	app, cleanup, err := InitializeApp(ctx, cfg, zapLogger)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer cleanup()

	// 3. serve
	server := &http.Server{
		Addr:              listenAddr(cfg),
		Handler:           app.Engine,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		zapLogger.Infof(ctx, "HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// 4. graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		zapLogger.Infof(ctx, "received %v, shutting down", sig)
	case err := <-serverErrChan:
		zapLogger.Errorf(ctx, "HTTP server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Errorf(ctx, "HTTP server shutdown error: %v", err)
		return
	}
	zapLogger.Infof(ctx, "HTTP server stopped")
}
