package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used to map application errors onto HTTP statuses.
const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
	CodeInternal   = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response.
// The wire contract is a single "error" field.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError writes a standardized error response. For plain errors the
// underlying message is exposed verbatim, store failures included.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	msg := err.Error()
	if appErr, ok := err.(*AppError); ok {
		msg = appErr.Message
		if appErr.Err != nil {
			msg = appErr.Err.Error()
		}
	}
	return c.Status(status).JSON(ErrorResponse{Error: msg})
}
