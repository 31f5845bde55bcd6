package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSubscriptionClosed the subscription was closed while waiting
var ErrSubscriptionClosed = errors.New("subscription closed")

// StatusSubscription an active subscription to one channel.
// Messages published after Listen returned are delivered to Next.
type StatusSubscription interface {
	Next(ctx context.Context, timeout time.Duration) (string, error)
	Close() error
}

// PubSubClient redis Pub/Sub used to push order status changes from the worker to waiting API requests
type PubSubClient struct {
	rdb *redis.Client
}

// NewPubSubClient wraps an existing connection
func NewPubSubClient(rdb *redis.Client) *PubSubClient {
	return &PubSubClient{rdb: rdb}
}

// OrderStatusChannel channel carrying status updates of one order
func OrderStatusChannel(orderID string) string {
	return "storefront:order_status:" + orderID
}

// Listen subscribes to channel and returns once the server confirmed the subscription
func (c *PubSubClient) Listen(ctx context.Context, channel string) (StatusSubscription, error) {
	sub := c.rdb.Subscribe(ctx, channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}
	return &subscription{sub: sub}, nil
}

// Publish sends message on channel
func (c *PubSubClient) Publish(ctx context.Context, channel string, message string) error {
	return c.rdb.Publish(ctx, channel, message).Err()
}

type subscription struct {
	sub *redis.PubSub
}

// Next waits for one message, at most timeout
func (s *subscription) Next(ctx context.Context, timeout time.Duration) (string, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case msg, ok := <-s.sub.Channel():
		if !ok {
			return "", ErrSubscriptionClosed
		}
		return msg.Payload, nil
	case <-timeoutCtx.Done():
		return "", timeoutCtx.Err()
	}
}

func (s *subscription) Close() error {
	return s.sub.Close()
}
