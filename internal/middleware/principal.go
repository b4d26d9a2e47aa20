package middleware

import (
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	identity_case "github.com/Xenn-00/arbeitsplatz-meister/internal/use-cases/identity-case"
	"github.com/gofiber/fiber/v2"
)

// PrincipalMiddleware löst die authentifizierte Identität in einen Principal auf und legt ihn unter "principal" ab.
// Muss nach AuthMiddleware laufen.
func PrincipalMiddleware(identity identity_case.IdentityServiceContract) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authUserID, _ := c.Locals("auth_user_id").(string)
		email, _ := c.Locals("email").(string)
		if authUserID == "" {
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
		}

		principal, err := identity.ResolvePrincipal(c.Context(), entity.AuthIdentity{UserID: authUserID, Email: email})
		if err != nil {
			return err
		}

		c.Locals("principal", principal)
		c.Locals("role", string(principal.Role))
		return c.Next()
	}
}
