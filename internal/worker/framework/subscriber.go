package framework

import (
	"context"
	"sync"
	"time"
)

// Subscriber pulls jobs from the queue and hands them to the Processor
type Subscriber struct {
	cfg        *SubscriberConfig
	source     MessageSource
	logger     Logger
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewSubscriber creates a subscriber
func NewSubscriber(cfg *SubscriberConfig, source MessageSource, logger Logger) *Subscriber {
	return &Subscriber{
		cfg:    cfg,
		source: source,
		logger: logger,
	}
}

// Start launches the pulling goroutines
func (s *Subscriber) Start(parentCtx context.Context, inputChan chan<- *Message) {
	ctx, cancel := context.WithCancel(parentCtx)
	s.cancelFunc = cancel

	s.logger.Infof(ctx, "[Subscriber] starting %d pullers for queue %s", s.cfg.Concurrency, s.cfg.QueueName)

	for i := 0; i < s.cfg.Concurrency; i++ {
		s.wg.Add(1)
		go s.loop(ctx, i, inputChan)
	}
}

// Stop stops pulling new jobs
func (s *Subscriber) Stop() {
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
}

// Wait blocks until every puller exited
func (s *Subscriber) Wait() {
	s.wg.Wait()
	s.logger.Infof(context.Background(), "[Subscriber] all pullers exited")
}

func (s *Subscriber) loop(ctx context.Context, id int, inputChan chan<- *Message) {
	defer s.wg.Done()

	for {
		if ctx.Err() != nil {
			return
		}

		msg, err := s.source.Consume(s.cfg.QueueName, s.cfg.Timeout, s.cfg.TTR)
		if err != nil {
			s.logger.Warnf(ctx, "[Subscriber-%d] consume failed: %v", id, err)
			if !sleep(ctx, s.cfg.ErrorBackoff) {
				return
			}
			continue
		}
		if msg == nil {
			continue
		}

		select {
		case inputChan <- msg:
			s.logger.Debugf(ctx, "[Subscriber-%d] dispatched %s", id, msg.ID)
		case <-ctx.Done():
			// not acked, the queue redelivers it after TTR
			s.logger.Warnf(ctx, "[Subscriber-%d] shutting down, leaving %s to redelivery", id, msg.ID)
			return
		}

		if !sleep(ctx, s.cfg.Rate) {
			return
		}
	}
}

// sleep waits d, returning false if ctx ends first
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
