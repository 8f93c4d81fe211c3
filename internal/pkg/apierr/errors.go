package apierr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/lotto-stats/backend/internal/pkg/drawstats"
)

const (
	CodeNotFound             = "NOT_FOUND"
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInvalidDraw          = "INVALID_DRAW"
	CodeInvalidConfiguration = "INVALID_CONFIGURATION"
	CodeUnavailable          = "UNAVAILABLE"
	CodeInternalError        = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrUnavailable is returned when a dependency such as the draw store is down.
	ErrUnavailable = New(fiber.StatusServiceUnavailable, CodeUnavailable, "service temporarily unavailable")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]any

type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e APIError) Msg(format string, parts ...any) *APIError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e APIError) WithExtras(extras Extras) *APIError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations any) *APIError {
	return ErrInvalidReq.WithExtras(Extras{
		"violations": violations,
	})
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

// FromDomain translates the aggregation errors into client errors. Other
// errors are returned unchanged.
func FromDomain(err error) error {
	var invalidDraw *drawstats.InvalidDrawError
	if errors.As(err, &invalidDraw) {
		e := New(fiber.StatusBadRequest, CodeInvalidDraw, invalidDraw.Error())
		if invalidDraw.Index != 0 {
			return e.WithExtras(Extras{"draw_number": invalidDraw.Index})
		}
		return e
	}

	var invalidConfig *drawstats.ConfigurationError
	if errors.As(err, &invalidConfig) {
		return New(fiber.StatusBadRequest, CodeInvalidConfiguration, invalidConfig.Error()).
			WithExtras(Extras{"field": invalidConfig.Field})
	}

	return err
}
