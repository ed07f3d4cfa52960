package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID on both request and response.
const RequestIDHeader = "X-Request-ID"

// RequestIDLocalKey is where the request ID is stored in context locals.
const RequestIDLocalKey = "request_id"

// RequestID guarantees a request ID on every request: a client-supplied
// X-Request-ID is reused, otherwise a fresh UUID is minted. The ID is stored
// in locals for the request logger and echoed on the response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get(RequestIDHeader))
		if id == "" {
			id = uuid.New().String()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}
