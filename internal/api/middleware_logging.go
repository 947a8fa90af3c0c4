package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger emits one structured line per request.
func (handler *Handler) RequestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	handler.log.Info().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request")

	return err
}
