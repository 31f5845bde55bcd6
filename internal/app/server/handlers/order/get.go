package order

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/app/domains/apimodel/response"
	"storefront/internal/app/domains/entity/etorder"
	"storefront/internal/app/pkg/ginx"
)

// Get godoc
// @Summary      Order detail
// @Description  With wait=N a pending order is held up to N seconds (max 30) until the payment settles.
// @Tags         orders
// @Produce      json
// @Param        id   path  string true  "order id"
// @Param        wait query int    false "seconds to wait for settlement"
// @Success      200 {object} ginx.Response{data=response.OrderResponse}
// @Failure      404 {object} ginx.Response
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	var wait time.Duration
	if w, err := strconv.Atoi(c.Query("wait")); err == nil && w > 0 {
		wait = time.Duration(w) * time.Second
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"), wait)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ginx.Success(c, response.FromOrderEntity(order))
}

// List GET /api/v1/admin/orders?status=PAID
func (h *OrderHandler) List(c *gin.Context) {
	page, limit := ginx.PageParams(c)
	status := etorder.Status(c.Query("status"))

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), status, page, limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	ginx.SuccessWithPage(c, response.FromOrderEntities(orders), page, limit, total)
}
