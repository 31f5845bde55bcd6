package order

import "storefront/internal/app/domains/services/svorder"

// OrderHandler checkout and order HTTP handler
type OrderHandler struct {
	checkoutService *svorder.CheckoutService
	orderService    *svorder.OrderService
}

// NewOrderHandler creates the handler
func NewOrderHandler(checkoutService *svorder.CheckoutService, orderService *svorder.OrderService) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
	}
}
