package order

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/app/domains/apimodel/request"
	"storefront/internal/app/domains/apimodel/response"
	"storefront/internal/app/pkg/ginx"
)

// Checkout godoc
// @Summary      Checkout
// @Description  Creates a PENDING_PAYMENT order with shipping priced to ship_to and a payment intent.
// @Description  The returned client_secret confirms the payment in the browser.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body request.CheckoutRequest true "cart"
// @Success      201 {object} ginx.Response{data=response.CheckoutResponse}
// @Failure      400 {object} ginx.Response "invalid cart or address"
// @Failure      422 {object} ginx.Response "inactive product or insufficient stock"
// @Failure      502 {object} ginx.Response "payment provider unavailable"
// @Router       /checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	result, err := h.checkoutService.Checkout(c.Request.Context(), req.ToCheckoutInput())
	if err != nil {
		_ = c.Error(err)
		return
	}
	ginx.Created(c, response.FromCheckoutResult(result))
}
