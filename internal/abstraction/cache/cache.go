package cache

import (
	"context"
	"time"

	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
)

// Cache ist ein JSON-Key-Value-Cache. Get dekodiert in dest und meldet, ob der Schlüssel existierte.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, *app_errors.AppError)
	Set(ctx context.Context, key string, value any, ttl time.Duration) *app_errors.AppError
	Del(ctx context.Context, key string) *app_errors.AppError
	Exists(ctx context.Context, key string) (bool, *app_errors.AppError)
}
