package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/app/config"
	"storefront/internal/app/pkg/logger"
	"storefront/internal/app/server/handlers/content"
	"storefront/internal/app/server/handlers/order"
	"storefront/internal/app/server/handlers/product"
	"storefront/internal/app/server/handlers/shipping"
	"storefront/internal/app/server/middlewares"
)

// Handlers every HTTP handler of the API server
type Handlers struct {
	Shipping *shipping.ShippingHandler
	Product  *product.ProductHandler
	Content  *content.ContentHandler
	Order    *order.OrderHandler

	// ShippingFormula name of the pricing formula in use, reported by /health
	ShippingFormula string
}

// SetupRoutes builds the engine, grouping routes by audience
func SetupRoutes(cfg *config.Config, log logger.Logger, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.CORS(cfg.Server.AllowedOrigins))
	r.Use(middlewares.Logger(log))
	r.Use(middlewares.ErrorHandler(log, cfg.App.Debug))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
			"formula": h.ShippingFormula,
		})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/shipping/quote", h.Shipping.Quote)
		v1.GET("/home", h.Content.Home)

		products := v1.Group("/products")
		{
			products.GET("", h.Product.List)
			products.GET("/:slug", h.Product.Get)
		}

		contents := v1.Group("/content")
		{
			contents.GET("/:kind", h.Content.List)
			contents.GET("/:kind/:slug", h.Content.Get)
		}

		v1.POST("/checkout", h.Order.Checkout)
		v1.GET("/orders/:id", h.Order.Get)

		admin := v1.Group("/admin", middlewares.AdminAuth(cfg.Admin.Token))
		{
			admin.GET("/products", h.Product.AdminList)
			admin.POST("/products", h.Product.Create)
			admin.PUT("/products/:id", h.Product.Update)
			admin.DELETE("/products/:id", h.Product.Delete)

			admin.GET("/content/:kind", h.Content.AdminList)
			admin.POST("/content/:kind", h.Content.Create)
			admin.PUT("/content/:kind/:id", h.Content.Update)
			admin.DELETE("/content/:kind/:id", h.Content.Delete)

			admin.GET("/orders", h.Order.List)
		}
	}

	return r
}
