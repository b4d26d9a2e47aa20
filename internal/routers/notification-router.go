package routers

import (
	notification_handlers "github.com/Xenn-00/arbeitsplatz-meister/internal/handlers/notification"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/i18n"
	"github.com/gofiber/fiber/v2"
)

func NotificationRouter(api fiber.Router, services *Services, i18n *i18n.I18nService, authChain []fiber.Handler) {
	r := api.Group("/notifications", authChain...)
	notificationHandler := notification_handlers.NewNotificationHandler(services.Notifications, i18n)

	r.Get("/", notificationHandler.ListNotifications)
	r.Patch("/read-all", notificationHandler.MarkAllRead)
	r.Patch("/:notification_id/read", notificationHandler.MarkRead)
	r.Delete("/:notification_id", notificationHandler.DeleteNotification)
}
