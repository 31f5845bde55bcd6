package errorutil

import (
	"errors"
	"fmt"
)

// Error job failure carrying the retry decision for the worker
type Error struct {
	Message   string
	Retryable bool
	Err       error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retriable transient failure (network, upstream still processing); the job is redelivered
func Retriable(message string, err error) *Error {
	return &Error{Message: message, Retryable: true, Err: err}
}

// NonRetriable permanent failure (bad payload, missing record); the job is dropped
func NonRetriable(message string, err error) *Error {
	return &Error{Message: message, Retryable: false, Err: err}
}

// Wrap keeps an *Error as is; any other error is non-retryable
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Message: err.Error(), Retryable: false}
}

// IsRetryable reports whether err asks for redelivery
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}
