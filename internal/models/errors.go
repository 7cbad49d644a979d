package models

import (
	"errors"
	"fmt"
	"strings"
)

const (
	CodeMissingField       = "MISSING_FIELD"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeDuplicatePhone     = "DUPLICATE_PHONE"
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNotFound           = "NOT_FOUND"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError is the error type returned across the service boundary. Code selects the
// HTTP status; Err holds the underlying cause and is never sent to clients.
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

func NewMissingFieldError(fields ...string) *AppError {
	msg := "Missing required fields."
	if len(fields) > 0 {
		msg = fmt.Sprintf("Missing required fields: %s.", strings.Join(fields, ", "))
	}
	return &AppError{Code: CodeMissingField, Message: msg}
}

func NewDuplicateEmailError() *AppError {
	return &AppError{Code: CodeDuplicateEmail, Message: "An account with this email already exists."}
}

func NewDuplicatePhoneError() *AppError {
	return &AppError{Code: CodeDuplicatePhone, Message: "A host with this phone number already exists."}
}

func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// NewInvalidCredentialsError is shared by the unknown-email and wrong-password paths.
func NewInvalidCredentialsError() *AppError {
	return &AppError{Code: CodeInvalidCredentials, Message: "Invalid credentials."}
}

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found.", resource, id),
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error.",
		Err:     err,
	}
}

// ErrorCode returns the AppError code carried by err, or CodeInternal for foreign errors.
func ErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}
