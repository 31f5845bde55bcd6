package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"storefront/internal/app/pkg/errorx"
	"storefront/internal/app/pkg/ginx"
	"storefront/internal/app/pkg/logger"
)

const (
	msgInternal = "Internal server error"
	msgUpstream = "Upstream service unavailable"
)

// ErrorHandler renders the last error pushed with c.Error and turns panics into 500.
// Internal details are only exposed when debug is on.
func ErrorHandler(log logger.Logger, debugMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf(c.Request.Context(), "panic recovered: %v\n%s", r, debug.Stack())
				c.Abort()
				if debugMode {
					ginx.InternalError(c, fmt.Sprintf("panic: %v", r))
					return
				}
				ginx.InternalError(c, msgInternal)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		renderError(c, c.Errors.Last().Err, log, debugMode)
	}
}

func renderError(c *gin.Context, err error, log logger.Logger, debugMode bool) {
	ctx := c.Request.Context()
	status := errorx.HTTPStatus(err)

	var (
		validationErr *errorx.ValidationError
		businessErr   *errorx.BusinessError
	)
	switch {
	case errors.As(err, &validationErr):
		details := []ginx.ErrorDetail{{Path: validationErr.Field, Info: validationErr.Message}}
		ginx.ErrorWithDetails(c, status, err.Error(), details)
		return
	case errors.As(err, &businessErr) && len(businessErr.Details) > 0:
		details := make([]ginx.ErrorDetail, 0, len(businessErr.Details))
		for _, d := range businessErr.Details {
			details = append(details, ginx.ErrorDetail{Path: d.Path, Info: d.Info})
		}
		ginx.ErrorWithDetails(c, status, businessErr.Message, details)
		return
	}

	if status < http.StatusInternalServerError {
		log.Debugf(ctx, "request rejected: status=%d, error=%v", status, err)
		ginx.Error(c, status, err.Error())
		return
	}

	log.Errorf(ctx, "request failed: %s %s, status=%d, error=%v", c.Request.Method, c.Request.URL.Path, status, err)
	switch {
	case debugMode:
		ginx.Error(c, status, err.Error())
	case status == http.StatusBadGateway:
		ginx.Error(c, status, msgUpstream)
	default:
		ginx.Error(c, status, msgInternal)
	}
}
