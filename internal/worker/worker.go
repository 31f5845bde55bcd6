package worker

import (
	"context"

	"storefront/internal/app/pkg/logger"
	"storefront/internal/worker/framework"
)

// Worker one queue consumer
type Worker interface {
	Start()
	Shutdown()
	Name() string
}

// Instance Subscriber -> channel -> Processor pipeline
type Instance struct {
	ctx        context.Context
	name       string
	subscriber *framework.Subscriber
	processor  *framework.Processor
	inputChan  chan *framework.Message
	started    chan struct{}
	shutdownCh chan struct{}
	logger     logger.Logger
}

// NewInstance creates a worker
func NewInstance(
	ctx context.Context,
	name string,
	subscriberCfg *framework.SubscriberConfig,
	processorCfg *framework.ProcessorConfig,
	source framework.MessageSource,
	proc framework.Proc,
	log logger.Logger,
) *Instance {
	return &Instance{
		ctx:        ctx,
		name:       name,
		subscriber: framework.NewSubscriber(subscriberCfg, source, log),
		processor:  framework.NewProcessor(processorCfg, proc, source, log),
		inputChan:  make(chan *framework.Message, processorCfg.BufferSize),
		started:    make(chan struct{}),
		shutdownCh: make(chan struct{}),
		logger:     log,
	}
}

// Start runs the pipeline and blocks until Shutdown completes
func (w *Instance) Start() {
	w.logger.Infof(w.ctx, "[Worker] %s started", w.name)

	w.processor.Start(w.ctx, w.inputChan)
	w.subscriber.Start(w.ctx, w.inputChan)
	close(w.started)

	<-w.shutdownCh
}

// Shutdown stops pulling, then drains what was already pulled
func (w *Instance) Shutdown() {
	<-w.started
	w.logger.Infof(w.ctx, "[Worker] %s closing", w.name)

	w.subscriber.Stop()
	w.subscriber.Wait()

	w.processor.SignalShutdown()
	w.processor.Wait()

	close(w.shutdownCh)
	w.logger.Infof(w.ctx, "[Worker] %s shutdown complete", w.name)
}

func (w *Instance) Name() string {
	return w.name
}
