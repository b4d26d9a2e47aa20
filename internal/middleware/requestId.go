package middleware

import (
	"github.com/gofiber/fiber/v2"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	requestIDPrefix   = "APM-"
	requestIDAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
	maxRequestIDLen   = 64
)

// RequestIDMiddleware übernimmt X-Request-ID vom Client oder vergibt eine neue ID.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLen {
			id, err := gonanoid.Generate(requestIDAlphabet, 16)
			if err != nil {
				return err
			}
			requestID = requestIDPrefix + id
		}

		c.Locals("request_id", requestID)
		c.Set(fiber.HeaderXRequestID, requestID)

		return c.Next()
	}
}
