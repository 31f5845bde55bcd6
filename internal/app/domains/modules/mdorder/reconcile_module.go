package mdorder

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/app/domains/entity/etorder"
	"storefront/internal/app/infra/persistence/redis"
	"storefront/internal/common/model"
)

// JobPublisher queue the reconcile job is published to
type JobPublisher interface {
	Publish(queue string, data interface{}, delay time.Duration) (string, error)
}

// StatusChannel pub/sub used to announce settled orders
type StatusChannel interface {
	Publish(ctx context.Context, channel, message string) error
	Listen(ctx context.Context, channel string) (redis.StatusSubscription, error)
}

// ReconcileModule order payment reconciliation plumbing:
// job format, queue name and status channel naming.
type ReconcileModule struct {
	publisher JobPublisher
	channel   StatusChannel
	queueName string
	delay     time.Duration
}

// NewReconcileModule creates the module. channel may be nil when redis is not configured.
func NewReconcileModule(publisher JobPublisher, channel StatusChannel, queueName string, delay time.Duration) *ReconcileModule {
	return &ReconcileModule{
		publisher: publisher,
		channel:   channel,
		queueName: queueName,
		delay:     delay,
	}
}

// PublishReconcileJob schedules the payment check of order
func (m *ReconcileModule) PublishReconcileJob(ctx context.Context, requestID string, order *etorder.Order) (string, error) {
	job, err := model.NewOrderReconcileJob(requestID, order.ID, order.PaymentIntentID)
	if err != nil {
		return "", fmt.Errorf("build reconcile job failed: %w", err)
	}
	return m.publisher.Publish(m.queueName, job, m.delay)
}

// NotifyStatus announces the new status of an order
func (m *ReconcileModule) NotifyStatus(ctx context.Context, orderID string, status etorder.Status) error {
	if m.channel == nil {
		return nil
	}
	return m.channel.Publish(ctx, redis.OrderStatusChannel(orderID), string(status))
}

// ListenStatus subscribes to the status channel of order. The caller closes
// the subscription.
func (m *ReconcileModule) ListenStatus(ctx context.Context, orderID string) (redis.StatusSubscription, error) {
	if m.channel == nil {
		return nil, fmt.Errorf("order status channel not configured")
	}
	return m.channel.Listen(ctx, redis.OrderStatusChannel(orderID))
}
