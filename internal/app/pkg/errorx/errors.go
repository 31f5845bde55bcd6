package errorx

import (
	"errors"
	"fmt"
	"net/http"
)

// Business errors
var (
	ErrNotFound        = errors.New("not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrContentNotFound = errors.New("content not found")
	ErrDuplicateSlug   = errors.New("slug already exists")
	ErrProductInactive = errors.New("product is not available")
	ErrOutOfStock      = errors.New("insufficient stock")
	ErrPaymentPending  = errors.New("payment still processing")
)

// ValidationError missing or malformed input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + " " + e.Message
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// UnsupportedRegionError destination outside the shipping area
type UnsupportedRegionError struct {
	Country string
}

func (e *UnsupportedRegionError) Error() string {
	return fmt.Sprintf("shipping to %q is not supported, only US destinations are accepted", e.Country)
}

// LookupError unknown postal code
type LookupError struct {
	PostalCode string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown postal code: %s", e.PostalCode)
}

// UpstreamError failure of an outbound collaborator (carrier rates, payments)
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s upstream failed: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError wraps err as an UpstreamError of service
func NewUpstreamError(service string, err error) *UpstreamError {
	return &UpstreamError{Service: service, Err: err}
}

// BusinessError carries an explicit HTTP code
type BusinessError struct {
	Code    int
	Message string
	Details []ErrorDetail
}

// ErrorDetail field level detail
type ErrorDetail struct {
	Path string
	Info string
}

// Error implements error
func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError creates a BusinessError
func NewBusinessError(code int, message string) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
	}
}

// HTTPStatus maps an error to the status code returned to API callers.
func HTTPStatus(err error) int {
	var (
		validationErr *ValidationError
		regionErr     *UnsupportedRegionError
		lookupErr     *LookupError
		upstreamErr   *UpstreamError
		businessErr   *BusinessError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &businessErr):
		return businessErr.Code
	case errors.As(err, &validationErr), errors.As(err, &regionErr), errors.As(err, &lookupErr):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrContentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateSlug):
		return http.StatusConflict
	case errors.Is(err, ErrProductInactive), errors.Is(err, ErrOutOfStock):
		return http.StatusUnprocessableEntity
	case errors.As(err, &upstreamErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
