package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	internal_i18n "github.com/Xenn-00/arbeitsplatz-meister/internal/i18n"
	use_cases "github.com/Xenn-00/arbeitsplatz-meister/internal/use-cases"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp(t *testing.T, revoked *use_cases.MockCache) (*fiber.App, *utils.PasetoMaker) {
	t.Helper()
	maker, err := utils.NewPasetoMaker(utils.GenerateSymmetricKey())
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandlerMiddleware(internal_i18n.NewInitI18nService()),
	})
	app.Get("/me", AuthMiddleware(maker, revoked), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("auth_user_id").(string) + "|" + c.Locals("email").(string))
	})
	return app, maker
}

// Test requests without a bearer token are rejected
func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app, _ := newAuthApp(t, use_cases.NewMockCache())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/me", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Test a valid token exposes the auth identity
func TestAuthMiddleware_ValidToken(t *testing.T) {
	app, maker := newAuthApp(t, use_cases.NewMockCache())
	token, _ := maker.CreateToken("auth-1", "anna@example.com", "jti-1", time.Hour)

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Test malformed or foreign tokens are rejected
func TestAuthMiddleware_InvalidToken(t *testing.T) {
	app, _ := newAuthApp(t, use_cases.NewMockCache())
	other, err := utils.NewPasetoMaker(utils.GenerateSymmetricKey())
	require.NoError(t, err)
	foreign, _ := other.CreateToken("auth-1", "anna@example.com", "jti-1", time.Hour)

	for _, header := range []string{"Token abc", "Bearer", "Bearer " + foreign} {
		req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, header)
	}
}

// Test revoked token ids are rejected
func TestAuthMiddleware_RevokedToken(t *testing.T) {
	revoked := use_cases.NewMockCache()
	require.Nil(t, revoked.Set(context.Background(), utils.RevokedTokenKey("jti-1"), true, time.Hour))
	app, maker := newAuthApp(t, revoked)
	token, _ := maker.CreateToken("auth-1", "anna@example.com", "jti-1", time.Hour)

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func newRoleApp(role entity.Role) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandlerMiddleware(internal_i18n.NewInitI18nService()),
	})
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("role", string(role))
		}
		return c.Next()
	})
	app.Get("/settings", RequireRoles(entity.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

// Test settings routes are admin only
func TestRequireRoles(t *testing.T) {
	cases := []struct {
		role   entity.Role
		status int
	}{
		{entity.RoleAdmin, fiber.StatusOK},
		{entity.RoleManager, fiber.StatusForbidden},
		{entity.RoleEmployee, fiber.StatusForbidden},
		{"", fiber.StatusUnauthorized},
	}

	for _, tc := range cases {
		resp, err := newRoleApp(tc.role).Test(httptest.NewRequest(fiber.MethodGet, "/settings", nil))
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode, string(tc.role))
	}
}

// Test comment creation is limited per principal and task
func TestCommentRateLimiter(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandlerMiddleware(internal_i18n.NewInitI18nService()),
	})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("principal", &entity.Principal{ID: c.Get("X-Principal"), Role: entity.RoleEmployee})
		return c.Next()
	})
	app.Post("/tasks/:task_id/comments", CommentRateLimiter(2, time.Minute, nil), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	post := func(principal, taskID string) int {
		req := httptest.NewRequest(fiber.MethodPost, "/tasks/"+taskID+"/comments", nil)
		req.Header.Set("X-Principal", principal)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusCreated, post("p-1", "t-1"))
	assert.Equal(t, fiber.StatusCreated, post("p-1", "t-1"))
	assert.Equal(t, fiber.StatusTooManyRequests, post("p-1", "t-1"))

	// anderer Task und anderer Principal haben eigene Zähler
	assert.Equal(t, fiber.StatusCreated, post("p-1", "t-2"))
	assert.Equal(t, fiber.StatusCreated, post("p-2", "t-1"))
}
