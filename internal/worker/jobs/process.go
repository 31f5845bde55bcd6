package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"storefront/internal/app/pkg/errorutil"
	"storefront/internal/app/pkg/logger"
	"storefront/internal/common/model"
	"storefront/internal/worker/framework"
)

// Handler handles the jobs of one action type. Errors should be
// *errorutil.Error; anything else is treated as permanent.
type Handler func(ctx context.Context, job *model.Job) error

// NewProcess returns the Proc routing jobs to handlers by action type
// 1. parse the job envelope
// 2. carry the originating request id as trace id
// 3. pick the handler
// 4. run it, converting panics to permanent failures
// 5. map the error to ack, release or bury
func NewProcess(log logger.Logger, handlers map[string]Handler) framework.Proc {
	return func(ctx context.Context, msg *framework.Message) *framework.Result {
		start := time.Now()

		job, err := parseJob(msg.Data)
		if err != nil {
			return &framework.Result{Action: framework.ActionBury, Err: err}
		}

		ctx = logger.WithTraceID(ctx, job.RequestID)

		handler, ok := handlers[job.ActionType]
		if !ok {
			return &framework.Result{
				Action: framework.ActionBury,
				Err:    fmt.Errorf("no handler for action_type %q", job.ActionType),
			}
		}

		err = safeHandle(ctx, handler, job)
		log.Infof(ctx, "job handled: action_type=%s, id=%s, duration=%v, error=%v",
			job.ActionType, job.ID, time.Since(start), err)
		return resultOf(err)
	}
}

func parseJob(data []byte) (*model.Job, error) {
	var job model.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("json unmarshal failed: %w", err)
	}
	if job.ActionType == "" {
		return nil, fmt.Errorf("invalid job: action_type is empty")
	}
	if job.RequestID == "" {
		job.RequestID = uuid.New().String()
	}
	return &job, nil
}

func safeHandle(ctx context.Context, handler Handler, job *model.Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errorutil.NonRetriable(fmt.Sprintf("handler panic: %v", r), nil)
		}
	}()
	return handler(ctx, job)
}

func resultOf(err error) *framework.Result {
	switch {
	case err == nil:
		return &framework.Result{Action: framework.ActionAck}
	case errorutil.IsRetryable(err):
		return &framework.Result{Action: framework.ActionRelease, Err: err}
	default:
		return &framework.Result{Action: framework.ActionBury, Err: err}
	}
}
