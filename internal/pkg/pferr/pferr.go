package pferr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeRejected       = "REJECTED"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrRejected is returned when a submission is declined without further detail.
	// Submitting clients are untrusted and receive no diagnostics.
	ErrRejected = New(fiber.StatusUnprocessableEntity, CodeRejected, "submission rejected")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]interface{}

type FinderError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *FinderError {
	return &FinderError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e FinderError) Msg(format string, parts ...interface{}) *FinderError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e FinderError) WithExtras(extras Extras) *FinderError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *FinderError {
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *FinderError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
