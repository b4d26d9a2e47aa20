package middleware

import (
	"slices"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
)

// RequireRoles prüft, ob die im Context unter "role" gespeicherte Rolle einer der erlaubten Rollen entspricht.
// Ohne Rolle 401, bei fehlender Berechtigung 403.
func RequireRoles(allowedRoles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
		}

		if slices.Contains(allowedRoles, entity.Role(role)) {
			return c.Next()
		}
		return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "forbidden", nil)
	}
}
