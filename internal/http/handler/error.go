package handler

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/juju/errors"
	"github.com/rs/zerolog"

	"outofschool/internal/dto"
	"outofschool/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// apiErrorsPayload carries accumulated field-level errors.
type apiErrorsPayload struct {
	RequestID string         `json:"request_id"`
	Errors    []dto.APIError `json:"api_errors"`
}

// requestError is a transport-level failure with a fixed status and code.
type requestError struct {
	status  int
	code    string
	message string
	details []string
}

func (e *requestError) Error() string { return e.code + ": " + e.message }

func badRequest(code, message string) error {
	return &requestError{status: fiber.StatusBadRequest, code: code, message: message}
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code, message string, details ...string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.GetRequestID(c),
		Error:     errorEnvelope{Code: code, Message: message, Details: details},
	})
}

func writeAPIErrors(c *fiber.Ctx, resp *dto.APIErrorResponse) error {
	return c.Status(fiber.StatusBadRequest).JSON(apiErrorsPayload{
		RequestID: middleware.GetRequestID(c),
		Errors:    resp.Errors,
	})
}

// publicMessage prefers the outermost annotation of a juju error so that
// wrapped causes stay out of responses.
func publicMessage(err error) string {
	if m, ok := err.(interface{ Message() string }); ok && m.Message() != "" {
		return m.Message()
	}
	return err.Error()
}

// ErrorHandler returns a Fiber global error handler that maps transport
// errors and service error kinds onto standardized responses.
// Only 5xx errors are logged; their details never reach the client.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var re *requestError
		if stderrors.As(err, &re) {
			return writeError(c, re.status, re.code, re.message, re.details...)
		}

		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusBadRequest:
				return writeError(c, fe.Code, "BAD_REQUEST", "bad request")
			case fiber.StatusNotFound:
				return writeError(c, fe.Code, "NOT_FOUND", "resource not found")
			case fiber.StatusMethodNotAllowed:
				return writeError(c, fe.Code, "METHOD_NOT_ALLOWED", "method not allowed")
			case fiber.StatusUnprocessableEntity:
				return writeError(c, fe.Code, "UNPROCESSABLE_ENTITY", "malformed request body")
			}
			if fe.Code < fiber.StatusInternalServerError {
				return writeError(c, fe.Code, "REQUEST_ERROR", fe.Message)
			}
		}

		switch {
		case errors.Is(err, errors.NotFound):
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", publicMessage(err))
		case errors.Is(err, errors.NotValid):
			return writeError(c, fiber.StatusBadRequest, "INVALID_REQUEST", publicMessage(err))
		case errors.Is(err, errors.AlreadyExists):
			return writeError(c, fiber.StatusConflict, "ALREADY_EXISTS", publicMessage(err))
		case errors.Is(err, errors.NotImplemented):
			return writeError(c, fiber.StatusNotImplemented, "NOT_IMPLEMENTED", "not implemented")
		}

		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request failed")
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
