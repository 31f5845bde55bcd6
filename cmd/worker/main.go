package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/app/config"
	"storefront/internal/app/domains/modules/mdcatalog"
	"storefront/internal/app/domains/modules/mdorder"
	"storefront/internal/app/domains/repo/rporder"
	"storefront/internal/app/domains/repo/rpproduct"
	"storefront/internal/app/domains/services/svorder"
	"storefront/internal/app/infra/mq/lmstfy"
	"storefront/internal/app/infra/payment"
	"storefront/internal/app/infra/persistence/mysql"
	"storefront/internal/app/infra/persistence/redis"
	"storefront/internal/app/pkg/logger"
	"storefront/internal/worker"
	"storefront/internal/worker/jobs"
)

var configPath = flag.String("config", "config/config.yaml", "path to the yaml config file, empty for env only")

func main() {
	flag.Parse()

	// 1. load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ValidateWorker(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := context.Background()
	zapLogger.Infof(ctx, "worker starting: name=%s, env=%s, queue=%s", cfg.Worker.Name, cfg.App.Env, cfg.Lmstfy.OrderQueue)

	// 2. infra
	db, err := mysql.Open(ctx, cfg.MySQL)
	if err != nil {
		log.Fatalf("Failed to open mysql: %v", err)
	}
	defer mysql.Close(db)

	var statusChannel mdorder.StatusChannel
	if cfg.Redis.Addr != "" {
		rdb, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect redis: %v", err)
		}
		defer rdb.Close()
		statusChannel = redis.NewPubSubClient(rdb)
	}

	queue := lmstfy.NewClient(cfg.Lmstfy)
	payments := payment.New(cfg.Payment.BaseURL, cfg.Payment.SecretKey, &http.Client{Timeout: cfg.Payment.Timeout})

	// 3. modules and service
	catalogModule := mdcatalog.NewCatalogModule(rpproduct.NewProductRepository(db))
	orderModule := mdorder.NewOrderModule(rporder.NewOrderRepository(db))
	reconcileModule := mdorder.NewReconcileModule(queue, statusChannel, cfg.Lmstfy.OrderQueue, cfg.Lmstfy.Delay)
	reconcileService := svorder.NewReconcileService(orderModule, catalogModule, reconcileModule, payments, zapLogger)

	// 4. manager
	proc := jobs.NewProcess(zapLogger, jobs.Handlers(reconcileService))
	mgr, err := worker.NewManager(cfg, worker.NewLmstfySource(queue), proc, zapLogger)
	if err != nil {
		log.Fatalf("Failed to create manager: %v", err)
	}

	go mgr.Start()
	zapLogger.Infof(ctx, "worker started, press Ctrl+C to shut down")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	zapLogger.Infof(ctx, "received %v, shutting down worker", sig)
	mgr.Shutdown()
	zapLogger.Infof(ctx, "worker exited gracefully")
}
