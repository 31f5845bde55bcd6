package svorder

import (
	"context"
	"time"

	"storefront/internal/app/domains/entity/etorder"
	"storefront/internal/app/domains/modules/mdorder"
	"storefront/internal/app/pkg/logger"
)

// MaxWait upper bound of a status wait
const MaxWait = 30 * time.Second

// OrderService order queries
type OrderService struct {
	orderModule     *mdorder.OrderModule
	reconcileModule *mdorder.ReconcileModule
	log             logger.Logger
}

// NewOrderService creates the order service
func NewOrderService(orderModule *mdorder.OrderModule, reconcileModule *mdorder.ReconcileModule, log logger.Logger) *OrderService {
	return &OrderService{
		orderModule:     orderModule,
		reconcileModule: reconcileModule,
		log:             log,
	}
}

// GetOrder loads an order. With wait > 0 a pending order is held until the
// worker settles it or wait expires; the order is returned either way.
// 1. load the order, settled orders return at once
// 2. subscribe to the status channel
// 3. reload, the order may have settled before the subscription was active
// 4. wait for the status message and reload
func (s *OrderService) GetOrder(ctx context.Context, orderID string, wait time.Duration) (*etorder.Order, error) {
	order, err := s.orderModule.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if wait <= 0 || order.Status != etorder.StatusPendingPayment {
		return order, nil
	}
	if wait > MaxWait {
		wait = MaxWait
	}
	deadline := time.Now().Add(wait)

	listenCtx, cancel := context.WithDeadline(ctx, deadline)
	sub, err := s.reconcileModule.ListenStatus(listenCtx, orderID)
	cancel()
	if err != nil {
		s.log.Debugf(ctx, "listen order status failed: order_id=%s, error=%v", orderID, err)
		return order, nil
	}
	defer sub.Close()

	order, err = s.orderModule.GetOrder(ctx, orderID)
	if err != nil || order.Status != etorder.StatusPendingPayment {
		return order, err
	}

	status, err := sub.Next(ctx, time.Until(deadline))
	if err != nil {
		s.log.Debugf(ctx, "wait for order status ended: order_id=%s, error=%v", orderID, err)
		return s.orderModule.GetOrder(ctx, orderID)
	}
	if etorder.Status(status) == order.Status {
		return order, nil
	}
	return s.orderModule.GetOrder(ctx, orderID)
}

func (s *OrderService) ListOrders(ctx context.Context, status etorder.Status, page, limit int) ([]*etorder.Order, int64, error) {
	return s.orderModule.ListOrders(ctx, status, page, limit)
}
