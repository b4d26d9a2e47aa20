package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AcceptLanguageMiddleware ruft Accept-Language von Header ab und speichert den Wert bei c.Locals
func AcceptLanguageMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get("Accept-Language", "en")
		// Format in der Praxis: "de-DE,de;q=0.9,en-US;q=0.8,en;q=0.7"
		lang := strings.Split(raw, ",")[0]
		lang = strings.Split(lang, ";")[0]
		lang = strings.TrimSpace(strings.Split(lang, "-")[0])
		if lang == "" {
			lang = "en"
		}
		c.Locals("lang", lang)
		return c.Next()
	}
}
