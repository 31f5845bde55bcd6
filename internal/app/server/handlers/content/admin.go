package content

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/app/domains/apimodel/request"
	"storefront/internal/app/domains/apimodel/response"
	"storefront/internal/app/domains/entity/etcontent"
	"storefront/internal/app/pkg/ginx"
)

// Create POST /api/v1/admin/content/:kind
func (h *ContentHandler) Create(c *gin.Context) {
	kind, err := etcontent.ParseKind(c.Param("kind"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req request.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	item, err := h.contentService.Create(c.Request.Context(), kind, req.ToDraft())
	if err != nil {
		_ = c.Error(err)
		return
	}
	ginx.Created(c, response.FromContentEntity(item))
}

// Update PUT /api/v1/admin/content/:kind/:id
func (h *ContentHandler) Update(c *gin.Context) {
	var req request.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	item, err := h.contentService.Update(c.Request.Context(), c.Param("id"), req.ToDraft())
	if err != nil {
		_ = c.Error(err)
		return
	}
	ginx.Success(c, response.FromContentEntity(item))
}

// Delete DELETE /api/v1/admin/content/:kind/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	if err := h.contentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
