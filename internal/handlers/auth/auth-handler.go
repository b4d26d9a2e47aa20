package auth_handlers

import (
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/arbeitsplatz-meister/internal/i18n"
	auth_case "github.com/Xenn-00/arbeitsplatz-meister/internal/use-cases/auth-case"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service auth_case.AuthServiceContract
	i18n    internal_i18n.Service
}

func NewAuthHandler(service auth_case.AuthServiceContract, i18n internal_i18n.Service) *AuthHandler {
	return &AuthHandler{
		service: service,
		i18n:    i18n,
	}
}

// Session liefert den aufgelösten Principal zum aktuellen Token.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}
	jti, _ := c.Locals("jti").(string)
	exp, _ := c.Locals("token_exp").(time.Time)

	resp, err := h.service.Session(c.Context(), principal, jti, exp)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_session", nil), resp, handlers.GetRequestID(c))
	return handlers.WriteJSON(c, fiber.StatusOK, webResp)
}

// Logout widerruft das aktuelle Token. Die JTI kommt aus c.Locals, nicht aus dem Body.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	jti, _ := c.Locals("jti").(string)
	exp, _ := c.Locals("token_exp").(time.Time)

	resp, err := h.service.Logout(c.Context(), jti, exp)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_logout", nil), resp, handlers.GetRequestID(c))
	return handlers.WriteJSON(c, fiber.StatusOK, webResp)
}
