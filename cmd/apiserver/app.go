package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/app/config"
	"storefront/internal/app/domains/modules/mdcatalog"
	"storefront/internal/app/domains/modules/mdcontent"
	"storefront/internal/app/domains/modules/mdorder"
	"storefront/internal/app/domains/repo/rpcontent"
	"storefront/internal/app/domains/repo/rporder"
	"storefront/internal/app/domains/repo/rpproduct"
	"storefront/internal/app/domains/services/svcatalog"
	"storefront/internal/app/domains/services/svcontent"
	"storefront/internal/app/domains/services/svorder"
	"storefront/internal/app/domains/services/svshipping"
	"storefront/internal/app/infra/carrier"
	"storefront/internal/app/infra/mq/lmstfy"
	"storefront/internal/app/infra/payment"
	"storefront/internal/app/infra/persistence/mysql"
	"storefront/internal/app/infra/persistence/redis"
	"storefront/internal/app/pkg/idgen"
	"storefront/internal/app/pkg/logger"
	"storefront/internal/app/server/handlers/content"
	"storefront/internal/app/server/handlers/order"
	"storefront/internal/app/server/handlers/product"
	"storefront/internal/app/server/handlers/shipping"
	"storefront/internal/app/server/routers"
)

// App the assembled API server
type App struct {
	Engine *gin.Engine
}

// InitializeApp wires every layer: infra -> repo -> modules -> services -> handlers
func InitializeApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
	fail := func(err error) (*App, func(), error) {
		cleanup()
		return nil, nil, err
	}

	// infra
	db, err := mysql.Open(ctx, cfg.MySQL)
	if err != nil {
		return fail(err)
	}
	cleanups = append(cleanups, func() { _ = mysql.Close(db) })

	var quoteOpts []svshipping.Option
	var statusChannel mdorder.StatusChannel
	if cfg.Redis.Addr != "" {
		rdb, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fail(err)
		}
		cleanups = append(cleanups, func() { _ = rdb.Close() })

		quoteOpts = append(quoteOpts, svshipping.WithCache(redis.NewQuoteCache(rdb, cfg.Redis.QuoteTTL)))
		statusChannel = redis.NewPubSubClient(rdb)
	} else {
		log.Warnf(ctx, "redis.addr not set: quote cache and order wait disabled")
	}

	if cfg.Carrier.Enabled {
		httpClient := &http.Client{Timeout: cfg.Carrier.Timeout}
		quoteOpts = append(quoteOpts, svshipping.WithCarrier(carrier.New(cfg.Carrier.BaseURL, cfg.Carrier.APIKey, httpClient)))
	}

	quoteService, err := svshipping.Setup(ctx, cfg, log, quoteOpts...)
	if err != nil {
		return fail(err)
	}

	queue := lmstfy.NewClient(cfg.Lmstfy)
	payments := payment.New(cfg.Payment.BaseURL, cfg.Payment.SecretKey, &http.Client{Timeout: cfg.Payment.Timeout})

	// repo
	productRepo := rpproduct.NewProductRepository(db)
	contentRepo := rpcontent.NewContentRepository(db)
	orderRepo := rporder.NewOrderRepository(db)

	// modules
	catalogModule := mdcatalog.NewCatalogModule(productRepo)
	contentModule := mdcontent.NewContentModule(contentRepo)
	orderModule := mdorder.NewOrderModule(orderRepo)
	reconcileModule := mdorder.NewReconcileModule(queue, statusChannel, cfg.Lmstfy.OrderQueue, cfg.Lmstfy.Delay)

	// services
	catalogService := svcatalog.NewCatalogService(catalogModule)
	contentService := svcontent.NewContentService(contentModule)
	checkoutService := svorder.NewCheckoutService(
		catalogModule,
		orderModule,
		reconcileModule,
		quoteService,
		payments,
		idgen.NewSnowflakeIDGenerator(1),
		log,
	)
	orderService := svorder.NewOrderService(orderModule, reconcileModule, log)

	// handlers
	engine := routers.SetupRoutes(cfg, log, routers.Handlers{
		Shipping: shipping.NewShippingHandler(quoteService),
		Product:  product.NewProductHandler(catalogService),
		Content:  content.NewContentHandler(contentService),
		Order:    order.NewOrderHandler(checkoutService, orderService),

		ShippingFormula: quoteService.Formula().Name(),
	})

	log.Infof(ctx, "app initialized: formula=%s, origin=%s", quoteService.Formula().Name(), cfg.Shipping.OriginZip)
	return &App{Engine: engine}, cleanup, nil
}

func listenAddr(cfg *config.Config) string {
	return fmt.Sprintf(":%s", cfg.Server.Port)
}
