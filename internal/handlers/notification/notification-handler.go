package notification_handlers

import (
	notification_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/notification-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/arbeitsplatz-meister/internal/i18n"
	notification_case "github.com/Xenn-00/arbeitsplatz-meister/internal/use-cases/notification-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	validator *validator.Validate
	service   notification_case.NotificationServiceContract
	i18n      internal_i18n.Service
}

func NewNotificationHandler(service notification_case.NotificationServiceContract, i18n internal_i18n.Service) *NotificationHandler {
	return &NotificationHandler{
		validator: handlers.NewValidator(),
		service:   service,
		i18n:      i18n,
	}
}

func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	var filter notification_dto.NotificationListFilter
	if err := handlers.ParseQuery(c, h.validator, &filter); err != nil {
		return err
	}

	resp, err := h.service.ListNotifications(c.Context(), principal, filter)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_list_notifications", nil), resp, handlers.GetRequestID(c))
	return handlers.WriteJSON(c, fiber.StatusOK, webResp)
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	notificationID, err := handlers.GetParamNotificationID(c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.MarkRead(c.Context(), principal, notificationID); err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_mark_read", nil), fiber.Map{"id": notificationID}, handlers.GetRequestID(c))
	return handlers.WriteJSON(c, fiber.StatusOK, webResp)
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	resp, err := h.service.MarkAllRead(c.Context(), principal)
	if err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_mark_all_read", nil), resp, handlers.GetRequestID(c))
	return handlers.WriteJSON(c, fiber.StatusOK, webResp)
}

func (h *NotificationHandler) DeleteNotification(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	notificationID, err := handlers.GetParamNotificationID(c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteNotification(c.Context(), principal, notificationID); err != nil {
		return err
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_delete_notification", nil), fiber.Map{"id": notificationID}, handlers.GetRequestID(c))
	return handlers.WriteJSON(c, fiber.StatusOK, webResp)
}
