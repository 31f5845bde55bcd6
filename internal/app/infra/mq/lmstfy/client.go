package lmstfy

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bitleak/lmstfy/client"

	"storefront/internal/app/config"
)

const (
	// jobTTL seconds a published job stays in the queue, 0 keeps it until consumed
	jobTTL = 0
	// jobTries deliveries before a job lands in the dead letter queue
	jobTries = 20
)

// Client lmstfy client wrapper shared by the API server (publish) and the worker (consume)
type Client struct {
	cli *client.LmstfyClient
}

// NewClient creates the client from config
func NewClient(cfg config.LmstfyConfig) *Client {
	return &Client{
		cli: client.NewLmstfyClient(cfg.Host, cfg.Port, cfg.Namespace, cfg.Token),
	}
}

// Publish marshals data to JSON and publishes it to queue after delay
func (c *Client) Publish(queue string, data interface{}, delay time.Duration) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	jobID, err := c.cli.Publish(queue, payload, jobTTL, jobTries, uint32(delay.Seconds()))
	if err != nil {
		return "", fmt.Errorf("lmstfy publish failed: %w", err)
	}
	return jobID, nil
}

// Consume blocks up to timeout for a job. It returns (nil, nil) when the queue stays empty.
// The job is redelivered unless acked within ttr.
func (c *Client) Consume(queue string, timeout, ttr time.Duration) (*client.Job, error) {
	job, err := c.cli.Consume(queue, uint32(ttr.Seconds()), uint32(timeout.Seconds()))
	if err != nil {
		return nil, fmt.Errorf("lmstfy consume failed: %w", err)
	}
	return job, nil
}

// Ack deletes a finished job
func (c *Client) Ack(queue, jobID string) error {
	if err := c.cli.Ack(queue, jobID); err != nil {
		return fmt.Errorf("lmstfy ack failed: %w", err)
	}
	return nil
}
