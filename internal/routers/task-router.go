package routers

import (
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	settings_handlers "github.com/Xenn-00/arbeitsplatz-meister/internal/handlers/settings"
	task_handlers "github.com/Xenn-00/arbeitsplatz-meister/internal/handlers/task"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/i18n"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

// TaskRouter registriert Aufgaben-, Kommentar-, Checklisten- und Einstellungsrouten.
func TaskRouter(api fiber.Router, services *Services, i18n *i18n.I18nService, authChain []fiber.Handler, commentLimiter fiber.Handler) {
	r := api.Group("/tasks", authChain...)
	taskHandler := task_handlers.NewTaskHandler(services.Tasks, i18n)
	settingsHandler := settings_handlers.NewSettingsHandler(services.Settings, i18n)

	// /settings muss vor /:task_id stehen
	admin := middleware.RequireRoles(entity.RoleAdmin)
	r.Get("/settings", admin, settingsHandler.GetSettings)
	r.Patch("/settings", admin, settingsHandler.UpdateSettings)

	r.Post("/", taskHandler.CreateTask)
	r.Get("/", taskHandler.ListTasks)
	r.Get("/:task_id", taskHandler.GetTask)
	r.Patch("/:task_id", taskHandler.UpdateTask)
	r.Delete("/:task_id", taskHandler.DeleteTask)
	r.Post("/:task_id/approve", taskHandler.ApproveRedirection)
	r.Post("/:task_id/comments", commentLimiter, taskHandler.AddComment)
	r.Delete("/:task_id/comments/:comment_id", taskHandler.DeleteComment)
	r.Post("/:task_id/checklist", taskHandler.AddChecklistItem)
	r.Patch("/:task_id/checklist/:item_id", taskHandler.ToggleChecklistItem)
}
