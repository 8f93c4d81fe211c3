package httpserver

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/lotto-stats/backend/internal/pkg/apierr"
	"github.com/lotto-stats/backend/internal/pkg/middlewares"
)

func asAPIError(err error) (*apierr.APIError, bool) {
	if err == nil {
		return nil, false
	}
	var e *apierr.APIError
	if errors.As(apierr.FromDomain(err), &e) {
		return e, true
	}
	return nil, false
}

func handleCustomError(ctx *fiber.Ctx, e *apierr.APIError) error {
	log.Warn().
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	body := fiber.Map{
		"success": false,
		"code":    e.ErrorCode,
		"error":   e.Message,
	}

	// Add extra details if needed
	if e.Extras != nil && len(*e.Extras) > 0 {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	// Use custom error handler to return JSON error responses
	if e, ok := asAPIError(err); ok {
		return handleCustomError(ctx, e)
	}

	// Default 500 statuscode
	re := *apierr.ErrInternalError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		// Overwrite status code if fiber.Error type & provided code
		re.StatusCode = fe.Code
		re.ErrorCode = "UNKNOWN_ERROR"
		re.Message = fe.Message
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	if hub := middlewares.SentryHub(ctx); hub != nil && re.StatusCode >= fiber.StatusInternalServerError {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		if id, ok := ctx.Locals(middlewares.RequestIDLocalsKey).(string); ok {
			hub.Scope().SetTag("request_id", id)
		}
		hub.CaptureException(err)
	}

	return handleCustomError(ctx, &re)
}
