package mdorder

import (
	"context"

	"storefront/internal/app/domains/entity/etorder"
	"storefront/internal/app/domains/repo/rporder"
)

// OrderModule order data access
type OrderModule struct {
	orderRepo rporder.OrderRepository
}

// NewOrderModule creates the order module
func NewOrderModule(orderRepo rporder.OrderRepository) *OrderModule {
	return &OrderModule{orderRepo: orderRepo}
}

func (m *OrderModule) CreateOrder(ctx context.Context, order *etorder.Order) error {
	return m.orderRepo.Create(ctx, order)
}

func (m *OrderModule) GetOrder(ctx context.Context, orderID string) (*etorder.Order, error) {
	return m.orderRepo.GetByID(ctx, orderID)
}

func (m *OrderModule) SetPaymentIntent(ctx context.Context, orderID, intentID string) error {
	return m.orderRepo.SetPaymentIntent(ctx, orderID, intentID)
}

// SettleOrder moves a pending order to status; false when it was already settled
func (m *OrderModule) SettleOrder(ctx context.Context, orderID string, status etorder.Status) (bool, error) {
	return m.orderRepo.UpdateStatus(ctx, orderID, etorder.StatusPendingPayment, status)
}

func (m *OrderModule) ListOrders(ctx context.Context, status etorder.Status, page, limit int) ([]*etorder.Order, int64, error) {
	return m.orderRepo.List(ctx, status, page, limit)
}
