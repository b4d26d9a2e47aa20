package middleware

import (
	"strings"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/abstraction/cache"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// AuthMiddleware validiert das Authorization-Header ("Bearer <token>") und verifiziert das PASETO-Token.
// Widerrufene Tokens stehen als revoked_token:<jti> in Redis.
// Bei Erfolg liegen "auth_user_id", "email", "jti" und "token_exp" in den Context-Lokalen.
func AuthMiddleware(pasetoMaker *utils.PasetoMaker, revoked cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.missing_header", nil)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.invalid_format", nil)
		}

		payload, err := pasetoMaker.VerifyToken(parts[1])
		if err != nil {
			log.Debug().Err(err).Msg("Verification error")
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.invalid_token", nil)
		}

		if payload.JTI != "" {
			isRevoked, cacheErr := revoked.Exists(c.Context(), utils.RevokedTokenKey(payload.JTI))
			if cacheErr != nil {
				// Redis nicht erreichbar: Token gilt weiter, Widerruf greift wieder sobald Redis zurück ist.
				log.Warn().Err(cacheErr).Str("jti", payload.JTI).Msg("Widerrufsliste nicht lesbar")
			} else if isRevoked {
				return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.revoked_token", nil)
			}
		}

		c.Locals("auth_user_id", payload.AuthUserID)
		c.Locals("email", payload.Email)
		c.Locals("jti", payload.JTI)
		c.Locals("token_exp", payload.ExpiresAt)

		return c.Next()
	}
}
