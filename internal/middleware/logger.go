package middleware

import (
	"errors"
	"time"

	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// LoggerMiddleware protokolliert eingehende Anfragen und deren Antworten.
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		reqID, _ := c.Locals("request_id").(string)

		// Der ErrorHandler läuft erst nach uns, der Status steht dann noch nicht in der Antwort.
		status := c.Response().StatusCode()
		event := log.Info()
		if err != nil {
			status = fiber.StatusInternalServerError
			var appErr *app_errors.AppError
			var fiberErr *fiber.Error
			switch {
			case errors.As(err, &appErr):
				status = appErr.Code
			case errors.As(err, &fiberErr):
				status = fiberErr.Code
			}
			event = log.Warn().Str("error", err.Error())
		}

		event.
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Dur("duration", time.Since(start)).
			Int("status", status).
			Msg("request")

		return err
	}
}
