package middleware

import (
	"fmt"
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// CommentRateLimiter begrenzt neue Kommentare pro Principal und Aufgabe.
// storage ist nil im Test (In-Memory), sonst der Redis-Store.
func CommentRateLimiter(max int, window time.Duration, storage fiber.Storage) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			principal, ok := c.Locals("principal").(*entity.Principal)
			if !ok || principal == nil {
				return "comment:ip:" + c.IP()
			}
			return fmt.Sprintf("comment:%s:%s", principal.ID, c.Params("task_id"))
		},
		LimitReached: func(c *fiber.Ctx) error {
			return app_errors.NewAppError(fiber.StatusTooManyRequests, app_errors.ErrRateLimited, "too_many_requests", nil)
		},
		Storage: storage,
	})
}
