package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const RequestIDLocal = "request_id"

// RequestIDMiddleware tags every request with a uuid, reusing an incoming
// X-Request-ID header when present.
func RequestIDMiddleware() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: RequestIDLocal,
	})
}

// RequestID returns the id assigned by RequestIDMiddleware.
func RequestID(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals(RequestIDLocal).(string); ok {
		return id
	}
	return ""
}
