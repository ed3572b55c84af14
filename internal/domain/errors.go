package domain

import (
	"fmt"
	"net/http"
	"strings"
)

type ErrorCode string

const (
	CodeValidation         ErrorCode = "VALIDATION_ERROR"
	CodeUnauthenticated    ErrorCode = "UNAUTHENTICATED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeAdminExists        ErrorCode = "ADMIN_EXISTS"
	CodeEmailTaken         ErrorCode = "EMAIL_TAKEN"
	CodeAggregation        ErrorCode = "AGGREGATION_ERROR"
	CodeInternal           ErrorCode = "INTERNAL"
)

// Error is the single failure type crossing the service boundary. Every
// instance maps to exactly one HTTP status and machine-stable code.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Status  int       `json:"-"`
	Fields  []string  `json:"fields,omitempty"`
	Raw     error     `json:"-"`
}

func (e *Error) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Raw)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Raw }

func ErrValidation(fields ...string) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: "Invalid or missing fields: " + strings.Join(fields, ", "),
		Status:  http.StatusBadRequest,
		Fields:  fields,
	}
}

func ErrUnauthenticated(msg string) *Error {
	return &Error{Code: CodeUnauthenticated, Message: msg, Status: http.StatusUnauthorized}
}

func ErrForbidden() *Error {
	return &Error{Code: CodeForbidden, Message: "Not authorized as admin", Status: http.StatusForbidden}
}

func ErrNotFound(entity string) *Error {
	return &Error{Code: CodeNotFound, Message: entity + " not found", Status: http.StatusNotFound}
}

// ErrInvalidCredentials is deliberately identical for unknown email and
// wrong password. Do not make the cause distinguishable.
func ErrInvalidCredentials() *Error {
	return &Error{Code: CodeInvalidCredentials, Message: "Invalid email or password", Status: http.StatusUnauthorized}
}

func ErrAdminExists() *Error {
	return &Error{Code: CodeAdminExists, Message: "Admin user already exists", Status: http.StatusBadRequest}
}

func ErrEmailTaken() *Error {
	return &Error{Code: CodeEmailTaken, Message: "User with this email already exists", Status: http.StatusBadRequest}
}

func ErrAggregation(raw error) *Error {
	return &Error{
		Code:    CodeAggregation,
		Message: "Error fetching dashboard statistics",
		Status:  http.StatusInternalServerError,
		Raw:     raw,
	}
}

func ErrInternal(raw error) *Error {
	return &Error{
		Code:    CodeInternal,
		Message: "Internal server error",
		Status:  http.StatusInternalServerError,
		Raw:     raw,
	}
}
