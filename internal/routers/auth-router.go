package routers

import (
	auth_handlers "github.com/Xenn-00/arbeitsplatz-meister/internal/handlers/auth"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/i18n"
	"github.com/gofiber/fiber/v2"
)

// AuthRouter richtet die Sitzungsrouten ein. Abmelden braucht nur ein gültiges Token, kein Profil.
func AuthRouter(api fiber.Router, services *Services, i18n *i18n.I18nService, tokenAuth fiber.Handler, principal fiber.Handler) {
	r := api.Group("/auth", tokenAuth)
	authHandler := auth_handlers.NewAuthHandler(services.Auth, i18n)

	r.Get("/session", principal, authHandler.Session)
	r.Delete("/abmelden", authHandler.Logout)
}
