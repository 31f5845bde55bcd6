package content

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/app/domains/apimodel/response"
	"storefront/internal/app/domains/entity/etcontent"
	"storefront/internal/app/pkg/ginx"
)

// List published documents of a kind; ?upcoming=true keeps future schedule items
// GET /api/v1/content/:kind
func (h *ContentHandler) List(c *gin.Context) {
	h.list(c, true)
}

// AdminList drafts included
// GET /api/v1/admin/content/:kind
func (h *ContentHandler) AdminList(c *gin.Context) {
	h.list(c, false)
}

func (h *ContentHandler) list(c *gin.Context, publishedOnly bool) {
	kind, err := etcontent.ParseKind(c.Param("kind"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	page, limit := ginx.PageParams(c)
	upcoming := c.Query("upcoming") == "true"
	items, total, err := h.contentService.List(c.Request.Context(), kind, publishedOnly, upcoming, page, limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ginx.SuccessWithPage(c, response.FromContentEntities(items), page, limit, total)
}

// Get GET /api/v1/content/:kind/:slug
func (h *ContentHandler) Get(c *gin.Context) {
	kind, err := etcontent.ParseKind(c.Param("kind"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	item, err := h.contentService.GetPublished(c.Request.Context(), kind, c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	ginx.Success(c, response.FromContentEntity(item))
}

// Home latest news, roster and upcoming matches
// GET /api/v1/home
func (h *ContentHandler) Home(c *gin.Context) {
	home, err := h.contentService.Home(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	ginx.Success(c, response.FromHome(home))
}
