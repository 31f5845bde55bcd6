package framework

import (
	"context"
	"sync"
	"time"

	"storefront/internal/app/pkg/logger"
)

// Processor runs the Proc on dispatched messages and acks them
type Processor struct {
	cfg        *ProcessorConfig
	proc       Proc
	source     MessageSource
	logger     Logger
	shutdownCh chan struct{}
	wg         sync.WaitGroup
}

// NewProcessor creates a processor
func NewProcessor(cfg *ProcessorConfig, proc Proc, source MessageSource, logger Logger) *Processor {
	return &Processor{
		cfg:        cfg,
		proc:       proc,
		source:     source,
		logger:     logger,
		shutdownCh: make(chan struct{}),
	}
}

// Start launches the processing goroutines
func (p *Processor) Start(ctx context.Context, inputChan <-chan *Message) {
	p.logger.Infof(ctx, "[Processor] starting %d workers", p.cfg.Concurrency)

	for i := 0; i < p.cfg.Concurrency; i++ {
		p.wg.Add(1)
		go p.loop(ctx, i, inputChan)
	}
}

// SignalShutdown switches the workers to drain mode
func (p *Processor) SignalShutdown() {
	close(p.shutdownCh)
}

// Wait blocks until every worker drained and exited
func (p *Processor) Wait() {
	p.wg.Wait()
	p.logger.Infof(context.Background(), "[Processor] all workers exited")
}

func (p *Processor) loop(ctx context.Context, workerID int, inputChan <-chan *Message) {
	defer p.wg.Done()

	for {
		select {
		case msg := <-inputChan:
			p.process(ctx, workerID, msg)

		case <-p.shutdownCh:
			count := 0
			for {
				select {
				case msg := <-inputChan:
					p.process(ctx, workerID, msg)
					count++
				default:
					p.logger.Infof(ctx, "[Processor-%d] drained %d messages", workerID, count)
					return
				}
			}
		}
	}
}

func (p *Processor) process(ctx context.Context, workerID int, msg *Message) {
	if msg == nil {
		return
	}
	start := time.Now()

	procCtx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()
	procCtx = logger.WithWorkerID(procCtx, workerID)
	procCtx = logger.WithJobID(procCtx, msg.ID)

	res := p.proc(procCtx, msg)
	if res == nil {
		res = &Result{Action: ActionAck}
	}

	switch res.Action {
	case ActionAck:
	case ActionBury:
		p.logger.Errorf(procCtx, "[Processor-%d] dropping job: %v", workerID, res.Err)
	case ActionRelease:
		p.logger.Warnf(procCtx, "[Processor-%d] job released for retry: %v", workerID, res.Err)
		return
	}

	if err := p.source.Ack(msg.Queue, msg.ID); err != nil {
		p.logger.Errorf(procCtx, "[Processor-%d] ack failed: %v", workerID, err)
		return
	}
	p.logger.Infof(procCtx, "[Processor-%d] job done: action=%s, duration=%v", workerID, res.Action, time.Since(start))
}
