package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

// RequestLogger middleware que registra cada petición con método, ruta,
// status y latencia. Errores del handler se registran en nivel error.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		var ev *zerolog.Event
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else {
			ev = log.Info()
		}
		ev.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("petición atendida")

		return err
	}
}
