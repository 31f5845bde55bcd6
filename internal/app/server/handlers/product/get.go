package product

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/app/domains/apimodel/response"
	"storefront/internal/app/pkg/ginx"
)

// List active products
// GET /api/v1/products?page=1&limit=20
func (h *ProductHandler) List(c *gin.Context) {
	h.list(c, true)
}

// AdminList every product, inactive included
// GET /api/v1/admin/products
func (h *ProductHandler) AdminList(c *gin.Context) {
	h.list(c, false)
}

func (h *ProductHandler) list(c *gin.Context, activeOnly bool) {
	page, limit := ginx.PageParams(c)
	products, total, err := h.catalogService.ListProducts(c.Request.Context(), activeOnly, page, limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ginx.SuccessWithPage(c, response.FromProductEntities(products), page, limit, total)
}

// Get product page
// GET /api/v1/products/:slug
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.catalogService.GetActiveProduct(c.Request.Context(), c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	ginx.Success(c, response.FromProductEntity(p))
}
