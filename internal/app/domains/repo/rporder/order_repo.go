package rporder

import (
	"context"

	"storefront/internal/app/domains/entity/etorder"
)

// OrderRepository order storage
type OrderRepository interface {
	Create(ctx context.Context, order *etorder.Order) error

	// GetByID fails with errorx.ErrOrderNotFound
	GetByID(ctx context.Context, orderID string) (*etorder.Order, error)

	// UpdateStatus moves the order only while it is still in status from;
	// it reports whether a row changed.
	UpdateStatus(ctx context.Context, orderID string, from, to etorder.Status) (bool, error)

	// SetPaymentIntent records the provider intent after checkout
	SetPaymentIntent(ctx context.Context, orderID, intentID string) error

	List(ctx context.Context, status etorder.Status, page, limit int) ([]*etorder.Order, int64, error)
}
