package task_handlers

import (
	task_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/task-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/arbeitsplatz-meister/internal/i18n"
	task_case "github.com/Xenn-00/arbeitsplatz-meister/internal/use-cases/task-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type TaskHandler struct {
	validator *validator.Validate
	service   task_case.TaskServiceContract
	i18n      internal_i18n.Service
}

func NewTaskHandler(service task_case.TaskServiceContract, i18n internal_i18n.Service) *TaskHandler {
	return &TaskHandler{
		validator: handlers.NewValidator(),
		service:   service,
		i18n:      i18n,
	}
}

func (h *TaskHandler) respond(c *fiber.Ctx, status int, key string, data any) error {
	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), key, nil), data, handlers.GetRequestID(c))
	return handlers.WriteJSON(c, status, webResp)
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	var req task_dto.CreateTaskRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.CreateTask(c.Context(), principal, &req)
	if err != nil {
		return err
	}

	return h.respond(c, fiber.StatusCreated, "response.success_create_tasks", resp)
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	var filter task_dto.TaskListFilter
	if err := handlers.ParseQuery(c, h.validator, &filter); err != nil {
		return err
	}

	resp, err := h.service.ListTasks(c.Context(), principal, filter)
	if err != nil {
		return err
	}

	c.Set("Cache-Control", "private, max-age=10")
	return h.respond(c, fiber.StatusOK, "response.success_list_tasks", resp)
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	taskID, err := handlers.GetParamTaskID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.GetTask(c.Context(), principal, taskID)
	if err != nil {
		return err
	}

	return h.respond(c, fiber.StatusOK, "response.success_get_task", resp)
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	taskID, err := handlers.GetParamTaskID(c, h.validator)
	if err != nil {
		return err
	}

	var req task_dto.UpdateTaskRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.UpdateTask(c.Context(), principal, taskID, &req)
	if err != nil {
		return err
	}

	return h.respond(c, fiber.StatusOK, "response.success_update_task", resp)
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	taskID, err := handlers.GetParamTaskID(c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteTask(c.Context(), principal, taskID); err != nil {
		return err
	}

	return h.respond(c, fiber.StatusOK, "response.success_delete_task", fiber.Map{"id": taskID})
}

func (h *TaskHandler) ApproveRedirection(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	taskID, err := handlers.GetParamTaskID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.ApproveRedirection(c.Context(), principal, taskID)
	if err != nil {
		return err
	}

	return h.respond(c, fiber.StatusOK, "response.success_approve_redirection", resp)
}

func (h *TaskHandler) AddComment(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	taskID, err := handlers.GetParamTaskID(c, h.validator)
	if err != nil {
		return err
	}

	var req task_dto.AddCommentRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.AddComment(c.Context(), principal, taskID, &req)
	if err != nil {
		return err
	}

	return h.respond(c, fiber.StatusCreated, "response.success_add_comment", resp)
}

func (h *TaskHandler) DeleteComment(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	taskID, err := handlers.GetParamTaskID(c, h.validator)
	if err != nil {
		return err
	}
	commentID, err := handlers.GetParamCommentID(c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteComment(c.Context(), principal, taskID, commentID); err != nil {
		return err
	}

	return h.respond(c, fiber.StatusOK, "response.success_delete_comment", fiber.Map{"id": commentID})
}

func (h *TaskHandler) AddChecklistItem(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	taskID, err := handlers.GetParamTaskID(c, h.validator)
	if err != nil {
		return err
	}

	var req task_dto.AddChecklistItemRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.AddChecklistItem(c.Context(), principal, taskID, &req)
	if err != nil {
		return err
	}

	return h.respond(c, fiber.StatusCreated, "response.success_add_checklist_item", resp)
}

func (h *TaskHandler) ToggleChecklistItem(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	taskID, err := handlers.GetParamTaskID(c, h.validator)
	if err != nil {
		return err
	}
	itemID, err := handlers.GetParamChecklistItemID(c, h.validator)
	if err != nil {
		return err
	}

	var req task_dto.ToggleChecklistItemRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.ToggleChecklistItem(c.Context(), principal, taskID, itemID, &req)
	if err != nil {
		return err
	}

	return h.respond(c, fiber.StatusOK, "response.success_toggle_checklist_item", resp)
}
