package middleware

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	internal_i18n "github.com/Xenn-00/arbeitsplatz-meister/internal/i18n"
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Status string `json:"status"`
	Error  struct {
		Code      int    `json:"code"`
		Type      string `json:"type"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
		Details   []struct {
			Field   string `json:"field"`
			Reason  string `json:"reason"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
}

func newErrorApp(handler fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandlerMiddleware(internal_i18n.NewInitI18nService()),
	})
	app.Use(RequestIDMiddleware())
	app.Use(AcceptLanguageMiddleware())
	app.Get("/probe", handler)
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, lang string) (int, errorBody) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body errorBody
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

// Test permission reasons reach the client untranslated
func TestErrorHandler_ReasonVerbatim(t *testing.T) {
	app := newErrorApp(func(c *fiber.Ctx) error {
		return app_errors.NewPermissionDenied("Employees cannot create tasks")
	})

	status, body := doRequest(t, app, "/probe", "de-DE,de;q=0.9")

	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, app_errors.ErrForbidden, body.Error.Type)
	assert.Equal(t, "Employees cannot create tasks", body.Error.Message)
	assert.NotEmpty(t, body.Error.RequestID)
}

// Test message keys are translated by Accept-Language
func TestErrorHandler_TranslatesMessageKey(t *testing.T) {
	app := newErrorApp(func(c *fiber.Ctx) error {
		return app_errors.NewNotFound("task.not_found")
	})

	status, body := doRequest(t, app, "/probe", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Task not found", body.Error.Message)

	_, body = doRequest(t, app, "/probe", "de")
	assert.Equal(t, "Aufgabe nicht gefunden", body.Error.Message)
}

// Test plain errors become 500 without leaking their text
func TestErrorHandler_UnknownErrorIsInternal(t *testing.T) {
	app := newErrorApp(func(c *fiber.Ctx) error {
		return errors.New("pq: connection reset")
	})

	status, body := doRequest(t, app, "/probe", "")

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, app_errors.ErrInternal, body.Error.Type)
	assert.NotContains(t, body.Error.Message, "connection reset")
}

// Test unknown routes use the same error envelope
func TestErrorHandler_FiberNotFound(t *testing.T) {
	app := newErrorApp(func(c *fiber.Ctx) error { return nil })

	status, body := doRequest(t, app, "/does-not-exist", "")

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, app_errors.ErrNotFound, body.Error.Type)
	assert.Equal(t, "Resource not found", body.Error.Message)
}
