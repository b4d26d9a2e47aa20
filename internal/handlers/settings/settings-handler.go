package settings_handlers

import (
	settings_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/settings-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/arbeitsplatz-meister/internal/i18n"
	settings_case "github.com/Xenn-00/arbeitsplatz-meister/internal/use-cases/settings-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	validator *validator.Validate
	service   settings_case.SettingsServiceContract
	i18n      internal_i18n.Service
}

func NewSettingsHandler(service settings_case.SettingsServiceContract, i18n internal_i18n.Service) *SettingsHandler {
	return &SettingsHandler{
		validator: handlers.NewValidator(),
		service:   service,
		i18n:      i18n,
	}
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	resp, err := h.service.GetSettings(c.Context(), principal)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_get_settings", nil), resp, handlers.GetRequestID(c))
	return handlers.WriteJSON(c, fiber.StatusOK, webResp)
}

func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	var req settings_dto.UpdateSettingsRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.UpdateSettings(c.Context(), principal, &req)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_update_settings", nil), resp, handlers.GetRequestID(c))
	return handlers.WriteJSON(c, fiber.StatusOK, webResp)
}
