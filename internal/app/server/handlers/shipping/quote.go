package shipping

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/app/domains/apimodel/request"
	"storefront/internal/app/domains/apimodel/response"
	"storefront/internal/app/pkg/ginx"
)

// Quote godoc
// @Summary      Shipping quote
// @Description  Prices a parcel from the warehouse to a US destination ZIP.
// @Description  Unknown or malformed ZIP codes, non-US destinations and non-positive weights are rejected with 400.
// @Tags         shipping
// @Accept       json
// @Produce      json
// @Param        request body request.ShippingQuoteRequest true "destination and optional weight in pounds"
// @Success      200 {object} response.ShippingQuoteResponse
// @Failure      400 {object} ginx.Response
// @Failure      500 {object} ginx.Response
// @Router       /shipping/quote [post]
func (h *ShippingHandler) Quote(c *gin.Context) {
	var req request.ShippingQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	quote, err := h.quoteService.Quote(c.Request.Context(), req.ToQuoteRequest())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}
