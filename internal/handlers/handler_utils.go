package handlers

import (
	"github.com/Xenn-00/arbeitsplatz-meister/internal/dtos"
	notification_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/notification-dto"
	settings_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/settings-dto"
	task_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/task-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateResponse erstellt eine standardisierte WebResponse.
func CreateResponse[T any](message string, data T, requestID string, details ...any) dtos.WebResponse[T] {
	return dtos.WebResponse[T]{
		Message:   message,
		Data:      data,
		RequestID: requestID,
		Details:   details,
	}
}

// NewValidator registriert die fachlichen Tags taskStatus, taskPriority und redirectionPolicy.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("taskStatus", task_dto.IsValidTaskStatus)
	validate.RegisterValidation("taskPriority", task_dto.IsValidTaskPriority)
	validate.RegisterValidation("redirectionPolicy", settings_dto.IsValidRedirectionPolicy)
	return validate
}

func GetPrincipal(c *fiber.Ctx) (*entity.Principal, *app_errors.AppError) {
	principal, ok := c.Locals("principal").(*entity.Principal)
	if !ok || principal == nil {
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	return principal, nil
}

func GetRequestID(c *fiber.Ctx) string {
	reqID, ok := c.Locals("request_id").(string)
	if !ok {
		reqID = "unknown"
	}
	return reqID
}

func GetLang(c *fiber.Ctx) string {
	lang, _ := c.Locals("lang").(string)
	return lang
}

func ParseBody(c *fiber.Ctx, v *validator.Validate, req any) *app_errors.AppError {
	if err := c.BodyParser(req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := v.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return nil
}

func ParseQuery(c *fiber.Ctx, v *validator.Validate, query any) *app_errors.AppError {
	if err := c.QueryParser(query); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := v.Struct(query); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return nil
}

func parseParam(c *fiber.Ctx, v *validator.Validate, param any) *app_errors.AppError {
	if err := c.ParamsParser(param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return nil
}

func GetParamTaskID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param task_dto.ParamTaskID
	if err := parseParam(c, v, &param); err != nil {
		return "", err
	}
	return param.ID, nil
}

func GetParamCommentID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param task_dto.ParamCommentID
	if err := parseParam(c, v, &param); err != nil {
		return "", err
	}
	return param.ID, nil
}

func GetParamChecklistItemID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param task_dto.ParamChecklistItemID
	if err := parseParam(c, v, &param); err != nil {
		return "", err
	}
	return param.ID, nil
}

func GetParamNotificationID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param notification_dto.ParamNotificationID
	if err := parseParam(c, v, &param); err != nil {
		return "", err
	}
	return param.ID, nil
}

// WriteJSON schreibt die Antwort; Schreibfehler werden zum AppError.
func WriteJSON(c *fiber.Ctx, status int, body any) error {
	if err := c.Status(status).JSON(body); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}
