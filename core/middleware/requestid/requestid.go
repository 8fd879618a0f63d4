package requestid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request ID.
const HeaderName = "X-Request-ID"

// New returns a middleware that assigns a unique request ID to every request.
// The ID is stored in locals under "request_id" and echoed in the response
// header so clients and logs can be correlated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals("request_id", rid)
		c.Set(HeaderName, rid)

		return c.Next()
	}
}
