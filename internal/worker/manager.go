package worker

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/atomic"

	"storefront/internal/app/config"
	"storefront/internal/app/pkg/logger"
	"storefront/internal/worker/framework"
)

// Manager owns the workers of the process
type Manager struct {
	ctx        context.Context
	workers    []Worker
	closing    *atomic.Bool
	started    chan struct{}
	shutdownCh chan struct{}
	wg         sync.WaitGroup
	logger     logger.Logger
}

// NewManager builds the order worker from cfg. source and proc are injected so
// the queue client and business handlers are constructed by the caller.
func NewManager(cfg *config.Config, source framework.MessageSource, proc framework.Proc, log logger.Logger) (*Manager, error) {
	if cfg.Lmstfy.OrderQueue == "" {
		return nil, fmt.Errorf("lmstfy.order_queue is required")
	}

	ctx := context.Background()
	w := cfg.Worker
	subCfg := &framework.SubscriberConfig{
		QueueName:    cfg.Lmstfy.OrderQueue,
		Concurrency:  w.Subscriber.Threads,
		Rate:         w.Subscriber.Rate,
		Timeout:      w.Subscriber.Timeout,
		TTR:          w.Subscriber.TTR,
		ErrorBackoff: w.Subscriber.ErrorBackoff,
	}
	procCfg := &framework.ProcessorConfig{
		Concurrency: w.Processor.Threads,
		BufferSize:  w.Processor.BufferSize,
		Timeout:     w.Processor.Timeout,
	}

	return &Manager{
		ctx:        ctx,
		workers:    []Worker{NewInstance(ctx, w.Name, subCfg, procCfg, source, proc, log)},
		closing:    atomic.NewBool(false),
		started:    make(chan struct{}),
		shutdownCh: make(chan struct{}),
		logger:     log,
	}, nil
}

// Start runs every worker and blocks until Shutdown
func (m *Manager) Start() {
	for _, w := range m.workers {
		w := w
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			w.Start()
		}()
		m.logger.Infof(m.ctx, "[Manager] worker started: %s", w.Name())
	}
	close(m.started)

	<-m.shutdownCh
}

// Shutdown stops the workers gracefully; later calls are no-ops
func (m *Manager) Shutdown() {
	if !m.closing.CAS(false, true) {
		return
	}
	<-m.started

	for _, w := range m.workers {
		m.logger.Infof(m.ctx, "[Manager] shutting down worker: %s", w.Name())
		w.Shutdown()
	}
	m.wg.Wait()

	close(m.shutdownCh)
	m.logger.Infof(m.ctx, "[Manager] shutdown complete")
}
