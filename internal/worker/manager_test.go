package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"storefront/internal/app/config"
	"storefront/internal/app/pkg/logger"
	"storefront/internal/worker/framework"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type chanSource struct {
	jobs  chan *framework.Message
	mu    sync.Mutex
	acked []string
}

func (s *chanSource) Consume(_ string, timeout, _ time.Duration) (*framework.Message, error) {
	select {
	case m := <-s.jobs:
		return m, nil
	case <-time.After(timeout):
		return nil, nil
	}
}

func (s *chanSource) Ack(_ string, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.acked = append(s.acked, id)
	return nil
}

func (s *chanSource) ackCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.acked)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Worker.Subscriber.Timeout = 20 * time.Millisecond
	cfg.Worker.Subscriber.Rate = 0
	return cfg
}

func TestManager_ProcessesAndShutsDown(t *testing.T) {
	source := &chanSource{jobs: make(chan *framework.Message, 2)}
	source.jobs <- &framework.Message{ID: "1", Queue: "order_reconcile"}
	source.jobs <- &framework.Message{ID: "2", Queue: "order_reconcile"}

	proc := func(context.Context, *framework.Message) *framework.Result {
		return &framework.Result{Action: framework.ActionAck}
	}
	mgr, err := NewManager(testConfig(t), source, proc, logger.NewNop())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		mgr.Start()
		close(done)
	}()

	require.Eventually(t, func() bool { return source.ackCount() == 2 }, 2*time.Second, 5*time.Millisecond)

	mgr.Shutdown()
	mgr.Shutdown()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}

func TestNewManager_RequiresQueue(t *testing.T) {
	cfg := testConfig(t)
	cfg.Lmstfy.OrderQueue = ""

	_, err := NewManager(cfg, &chanSource{}, nil, logger.NewNop())
	assert.Error(t, err)
}
