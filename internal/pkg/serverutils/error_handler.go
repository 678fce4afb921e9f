package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// StatusMapper maps a domain error to an HTTP status. ok is false when the
// mapper does not recognize err.
type StatusMapper func(err error) (status int, ok bool)

// ErrorHandlerMiddleware renders any error returned further down the chain
// as an error envelope. Mappers are tried in order; unknown errors are 500.
func ErrorHandlerMiddleware(mappers ...StatusMapper) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := statusOf(err, mappers)
		var data any
		var reqErr *RequestValidationError
		if errors.As(err, &reqErr) {
			data = reqErr.Fields
		}

		message := err.Error()
		if status == fiber.StatusInternalServerError {
			message = "internal server error"
		}
		return ctx.Status(status).JSON(ErrorResponse(status, message, data))
	}
}

func statusOf(err error, mappers []StatusMapper) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	var reqErr *RequestValidationError
	if errors.As(err, &reqErr) {
		return fiber.StatusBadRequest
	}
	for _, m := range mappers {
		if status, ok := m(err); ok {
			return status
		}
	}
	return fiber.StatusInternalServerError
}
