package framework

import (
	"context"
	"time"
)

// Message a job travelling from the Subscriber to the Processor
type Message struct {
	ID    string
	Queue string
	Data  []byte
}

// Action what the Processor does with a message once handled
type Action int

const (
	// ActionAck handled, delete the job
	ActionAck Action = iota
	// ActionRelease transient failure, leave the job for redelivery after its TTR
	ActionRelease
	// ActionBury permanent failure, delete the job and log it
	ActionBury
)

func (a Action) String() string {
	switch a {
	case ActionAck:
		return "ack"
	case ActionRelease:
		return "release"
	case ActionBury:
		return "bury"
	default:
		return "unknown"
	}
}

// Result outcome of a Proc
type Result struct {
	Action Action
	Err    error
}

// Proc business processing of one message
type Proc func(ctx context.Context, msg *Message) *Result

// MessageSource queue adapter
type MessageSource interface {
	// Consume blocks up to timeout; (nil, nil) when no job arrived
	Consume(queue string, timeout, ttr time.Duration) (*Message, error)

	// Ack deletes the job
	Ack(queue, jobID string) error
}

// Logger logging used by the pipeline
type Logger interface {
	Debugf(ctx context.Context, format string, args ...interface{})
	Infof(ctx context.Context, format string, args ...interface{})
	Warnf(ctx context.Context, format string, args ...interface{})
	Errorf(ctx context.Context, format string, args ...interface{})
}
