package worker

import (
	"time"

	"storefront/internal/app/infra/mq/lmstfy"
	"storefront/internal/worker/framework"
)

// lmstfySource adapts the lmstfy client to framework.MessageSource
type lmstfySource struct {
	client *lmstfy.Client
}

// NewLmstfySource wraps client
func NewLmstfySource(client *lmstfy.Client) framework.MessageSource {
	return &lmstfySource{client: client}
}

func (s *lmstfySource) Consume(queue string, timeout, ttr time.Duration) (*framework.Message, error) {
	job, err := s.client.Consume(queue, timeout, ttr)
	if err != nil || job == nil {
		return nil, err
	}
	return &framework.Message{
		ID:    job.ID,
		Queue: job.Queue,
		Data:  job.Data,
	}, nil
}

func (s *lmstfySource) Ack(queue, jobID string) error {
	return s.client.Ack(queue, jobID)
}
