package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/adevaproject/webapppro/internal/logger"
)

// Logger logs one structured event per request after the handler chain ran,
// so the final status code is captured. Pass nil to use the global logger.
func Logger(log *zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		l := log
		if l == nil {
			l = logger.Get()
		}

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		l.Info().
			Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Float64("latency_ms", float64(time.Since(start).Microseconds())/1000).
			Msg("request")

		return err
	}
}
