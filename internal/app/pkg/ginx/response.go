package ginx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Response unified response envelope
type Response struct {
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
	Details []ErrorDetail `json:"details,omitempty"`
	Data    interface{}   `json:"data,omitempty"`
	Page    *Page         `json:"page,omitempty"`
}

// ErrorDetail field level error
type ErrorDetail struct {
	Path string `json:"path" example:"email"`
	Info string `json:"info" example:"email is required"`
}

// Page pagination metadata
type Page struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// Success 200 with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// Created 201 with data
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessWithPage 200 with data and pagination
func SuccessWithPage(c *gin.Context, data interface{}, page, limit int, total int64) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Page:    &Page{Page: page, Limit: limit, Total: total},
	})
}

// Error error response
func Error(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, Response{
		Success: false,
		Error:   message,
	})
}

// ErrorWithDetails error response with field details
func ErrorWithDetails(c *gin.Context, httpCode int, message string, details []ErrorDetail) {
	c.JSON(httpCode, Response{
		Success: false,
		Error:   message,
		Details: details,
	})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// BadRequestWithValidation 400 with validator details
func BadRequestWithValidation(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ErrorWithDetails(c, http.StatusBadRequest, "Validation failed", ValidationDetails(validationErrs))
		return
	}

	BadRequest(c, err.Error())
}

// ValidationDetails converts validator errors to response details
func ValidationDetails(validationErrs validator.ValidationErrors) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, ErrorDetail{
			Path: fieldErr.Field(),
			Info: getValidationErrorMessage(fieldErr),
		})
	}
	return details
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// InternalError 500
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// getValidationErrorMessage friendly message per validator tag
func getValidationErrorMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "email":
		return fieldErr.Field() + " must be a valid email address"
	case "min":
		return fieldErr.Field() + " must be at least " + fieldErr.Param()
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param()
	case "gt":
		return fieldErr.Field() + " must be greater than " + fieldErr.Param()
	case "gte":
		return fieldErr.Field() + " must be greater than or equal to " + fieldErr.Param()
	case "oneof":
		return fieldErr.Field() + " must be one of: " + fieldErr.Param()
	case "len":
		return fieldErr.Field() + " must have length " + fieldErr.Param()
	default:
		return fieldErr.Field() + " is invalid"
	}
}
