package middleware

import (
	"trivia-api/internal/util"

	"github.com/gofiber/fiber/v2"
)

// RequestIDKey is the locals key under which the request id is stored
const RequestIDKey = "request_id"

// RequestID assigns a ULID to each request (or adopts the caller's
// X-Request-ID) and echoes it on the response for log correlation.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = util.NewULID()
		}
		c.Locals(RequestIDKey, id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}
