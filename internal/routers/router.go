package routers

import (
	"net"
	"strconv"
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/abstraction/cache"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/config"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/i18n"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/middleware"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/queue"
	auth_case "github.com/Xenn-00/arbeitsplatz-meister/internal/use-cases/auth-case"
	identity_case "github.com/Xenn-00/arbeitsplatz-meister/internal/use-cases/identity-case"
	notification_case "github.com/Xenn-00/arbeitsplatz-meister/internal/use-cases/notification-case"
	settings_case "github.com/Xenn-00/arbeitsplatz-meister/internal/use-cases/settings-case"
	task_case "github.com/Xenn-00/arbeitsplatz-meister/internal/use-cases/task-case"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	redis_fiber "github.com/gofiber/storage/redis/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Services bündelt die Use-Cases, die von den Routern geteilt werden.
type Services struct {
	Settings      settings_case.SettingsServiceContract
	Tasks         task_case.TaskServiceContract
	Notifications notification_case.NotificationServiceContract
	Identity      identity_case.IdentityServiceContract
	Auth          auth_case.AuthServiceContract
}

func NewServices(cfg *config.AppConfig, db *pgxpool.Pool, redis *redis.Client) *Services {
	settings := settings_case.NewSettingsService(db, redis, cfg.SettingsDefaults(), cfg.TASKS.SettingsCacheTTL)
	return &Services{
		Settings:      settings,
		Tasks:         task_case.NewTaskService(db, settings, queue.NewTaskQueue(redis)),
		Notifications: notification_case.NewNotificationService(db),
		Identity:      identity_case.NewIdentityService(db),
		Auth:          auth_case.NewAuthService(redis),
	}
}

// SetupRoutes richtet die API-Routen ein.
func SetupRoutes(app *fiber.App, cfg *config.AppConfig, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker) {
	api := app.Group("/api/v1")
	services := NewServices(cfg, db, redis)

	tokenAuth := middleware.AuthMiddleware(paseto, cache.NewRedisCache(redis))
	principal := middleware.PrincipalMiddleware(services.Identity)
	authChain := []fiber.Handler{tokenAuth, principal}
	commentLimiter := middleware.CommentRateLimiter(cfg.TASKS.CommentRateLimit, time.Minute, limiterStorage(redis))

	AuthRouter(api, services, i18n, tokenAuth, principal)
	TaskRouter(api, services, i18n, authChain, commentLimiter)
	NotificationRouter(api, services, i18n, authChain)
	HealthRouter(api, db, redis)
}

// limiterStorage baut den Fiber-Storage für den Rate-Limiter auf derselben Redis-Instanz.
func limiterStorage(redis *redis.Client) fiber.Storage {
	opts := redis.Options()
	host, portStr, err := net.SplitHostPort(opts.Addr)
	if err != nil {
		log.Warn().Err(err).Str("addr", opts.Addr).Msg("Redis-Adresse ungültig, Rate-Limiter nutzt In-Memory-Storage")
		return nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = 6379
	}

	return redis_fiber.New(redis_fiber.Config{
		Host:     host,
		Port:     port,
		Password: opts.Password,
		Database: opts.DB,
	})
}
