package svorder

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/app/domains/entity/etorder"
	"storefront/internal/app/domains/modules/mdcatalog"
	"storefront/internal/app/domains/modules/mdorder"
	"storefront/internal/app/infra/payment"
	"storefront/internal/app/pkg/errorutil"
	"storefront/internal/app/pkg/errorx"
	"storefront/internal/app/pkg/logger"
	"storefront/internal/common/model"
)

// ReconcileService settles orders against their payment intents (worker side)
type ReconcileService struct {
	orderModule     *mdorder.OrderModule
	catalogModule   *mdcatalog.CatalogModule
	reconcileModule *mdorder.ReconcileModule
	payments        payment.Client
	log             logger.Logger
}

// NewReconcileService creates the reconcile service
func NewReconcileService(
	orderModule *mdorder.OrderModule,
	catalogModule *mdcatalog.CatalogModule,
	reconcileModule *mdorder.ReconcileModule,
	payments payment.Client,
	log logger.Logger,
) *ReconcileService {
	return &ReconcileService{
		orderModule:     orderModule,
		catalogModule:   catalogModule,
		reconcileModule: reconcileModule,
		payments:        payments,
		log:             log,
	}
}

// Reconcile settles one order. Errors are *errorutil.Error; a retryable one
// means the intent is not final yet or a dependency failed.
// 1. load the order, settled orders are done
// 2. read the intent status
// 3. move the order to PAID or PAYMENT_FAILED
// 4. take paid items out of stock
// 5. announce the new status
func (s *ReconcileService) Reconcile(ctx context.Context, data model.OrderReconcileData) error {
	order, err := s.orderModule.GetOrder(ctx, data.OrderID)
	if err != nil {
		if errors.Is(err, errorx.ErrOrderNotFound) {
			return errorutil.NonRetriable("order not found", err)
		}
		return errorutil.Retriable("load order failed", err)
	}
	if order.Status != etorder.StatusPendingPayment {
		s.log.Infof(ctx, "order already settled: order_id=%s, status=%s", order.ID, order.Status)
		return nil
	}

	intentID := data.PaymentIntentID
	if intentID == "" {
		intentID = order.PaymentIntentID
	}
	if intentID == "" {
		return errorutil.NonRetriable("order has no payment intent", nil)
	}

	intent, err := s.payments.GetIntent(ctx, intentID)
	if err != nil {
		return errorutil.Retriable("get payment intent failed", err)
	}

	var next etorder.Status
	switch intent.Status {
	case payment.StatusSucceeded:
		next = etorder.StatusPaid
	case payment.StatusCanceled:
		next = etorder.StatusPaymentFailed
	default:
		return errorutil.Retriable(fmt.Sprintf("payment intent %s is %s", intent.ID, intent.Status), errorx.ErrPaymentPending)
	}

	changed, err := s.orderModule.SettleOrder(ctx, order.ID, next)
	if err != nil {
		return errorutil.Retriable("update order status failed", err)
	}
	if !changed {
		// a concurrent delivery settled it first
		return nil
	}
	s.log.Infof(ctx, "order settled: order_id=%s, status=%s", order.ID, next)

	if next == etorder.StatusPaid {
		for _, it := range order.Items {
			if err := s.catalogModule.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
				// the payment is taken, oversold items are handled by hand
				s.log.Errorf(ctx, "decrement stock failed: order_id=%s, product_id=%s, qty=%d, error=%v",
					order.ID, it.ProductID, it.Quantity, err)
			}
		}
	}

	if err := s.reconcileModule.NotifyStatus(ctx, order.ID, next); err != nil {
		s.log.Warnf(ctx, "notify order status failed: order_id=%s, error=%v", order.ID, err)
	}
	return nil
}
