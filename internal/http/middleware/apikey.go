package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/adevaproject/webapppro/internal/logger"
)

// APIKeyHeader is the header carrying the shared admin secret.
const APIKeyHeader = "X-API-Key"

// APIKey guards admin routes with a shared secret. A missing or mismatched
// key is rejected with 401 before any handler logic runs. The comparison is
// constant-time.
func APIKey(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		supplied := c.Get(APIKeyHeader)
		if supplied == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(key)) != 1 {
			logger.Get().Warn().
				Str("method", c.Method()).
				Str("path", c.Path()).
				Str("ip", c.IP()).
				Msg("admin request rejected: bad or missing API key")

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "unauthorized",
			})
		}

		return c.Next()
	}
}
