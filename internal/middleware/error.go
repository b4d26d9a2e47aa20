package middleware

import (
	"errors"

	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	internal_i18n "github.com/Xenn-00/arbeitsplatz-meister/internal/i18n"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandlerMiddleware behandelt Fehler, die während der Anfrageverarbeitung auftreten.
// Ablehnungsgründe (Reason) gehen unübersetzt an den Client, alles andere über i18n.
func ErrorHandlerMiddleware(i18nSvc internal_i18n.Service) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		lang, _ := c.Locals("lang").(string)
		if lang == "" {
			lang = "en"
		}

		var appErr *app_errors.AppError
		if !errors.As(err, &appErr) {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				appErr = app_errors.NewAppError(fiberErr.Code, fiberErrorType(fiberErr.Code), fiberErrorKey(fiberErr.Code), nil)
			} else {
				appErr = app_errors.NewAppError(
					fiber.StatusInternalServerError,
					app_errors.ErrInternal,
					"internal_error",
					err,
				)
			}
		}

		message := appErr.Reason
		if message == "" {
			message = i18nSvc.T(lang, appErr.MessageKey, nil)
		}

		reqID, _ := c.Locals("request_id").(string)

		respErr := fiber.Map{
			"code":       appErr.Code,
			"type":       appErr.Type,
			"message":    message,
			"request_id": reqID,
		}

		if len(appErr.Details) > 0 {
			var details []fiber.Map

			for _, d := range appErr.Details {
				details = append(details, fiber.Map{
					"field":  d.Field,
					"reason": d.Reason,
					"message": i18nSvc.T(
						lang,
						d.MessageKey,
						d.Params,
					),
				})
			}

			respErr["details"] = details
		}

		if appErr.Err != nil {
			log.Error().Err(appErr.Err).Str("request_id", reqID).Msg("application error")
		}

		return c.Status(appErr.Code).JSON(fiber.Map{
			"status": "error",
			"error":  respErr,
		})
	}
}

func fiberErrorType(code int) string {
	switch code {
	case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
		return app_errors.ErrNotFound
	case fiber.StatusTooManyRequests:
		return app_errors.ErrRateLimited
	}
	if code >= 500 {
		return app_errors.ErrInternal
	}
	return app_errors.ErrInvalidBody
}

func fiberErrorKey(code int) string {
	switch code {
	case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
		return "not_found"
	case fiber.StatusTooManyRequests:
		return "too_many_requests"
	}
	if code >= 500 {
		return "internal_error"
	}
	return "invalid_request"
}
