package product

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/app/domains/apimodel/request"
	"storefront/internal/app/domains/apimodel/response"
	"storefront/internal/app/pkg/ginx"
)

// Create POST /api/v1/admin/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	p, err := h.catalogService.CreateProduct(c.Request.Context(), req.ToDraft())
	if err != nil {
		_ = c.Error(err)
		return
	}
	ginx.Created(c, response.FromProductEntity(p))
}

// Update PUT /api/v1/admin/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	p, err := h.catalogService.UpdateProduct(c.Request.Context(), c.Param("id"), req.ToDraft())
	if err != nil {
		_ = c.Error(err)
		return
	}
	ginx.Success(c, response.FromProductEntity(p))
}

// Delete DELETE /api/v1/admin/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.catalogService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
