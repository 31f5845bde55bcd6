package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPubSub(t *testing.T) *PubSubClient {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), Protocol: 2})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewPubSubClient(rdb)
}

func TestOrderStatusChannel(t *testing.T) {
	assert.Equal(t, "storefront:order_status:abc", OrderStatusChannel("abc"))
	assert.NotEqual(t, OrderStatusChannel("a"), OrderStatusChannel("b"))
}

func TestPubSubClient_ListenReceivesLaterMessages(t *testing.T) {
	c := newTestPubSub(t)
	ctx := context.Background()
	channel := OrderStatusChannel("o-1")

	// published before anyone listens: dropped by redis
	require.NoError(t, c.Publish(ctx, channel, "EARLY"))

	sub, err := c.Listen(ctx, channel)
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, c.Publish(ctx, channel, "PAID"))

	msg, err := sub.Next(ctx, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "PAID", msg)
}

func TestPubSubClient_NextTimeout(t *testing.T) {
	c := newTestPubSub(t)
	ctx := context.Background()

	sub, err := c.Listen(ctx, OrderStatusChannel("o-2"))
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, c.Publish(ctx, OrderStatusChannel("other"), "PAID"))

	start := time.Now()
	_, err = sub.Next(ctx, 50*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
