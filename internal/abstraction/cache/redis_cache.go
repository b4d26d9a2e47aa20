package cache

import (
	"context"
	"time"

	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/utils"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(redis *redis.Client) *RedisCache {
	return &RedisCache{client: redis}
}

func (r *RedisCache) Get(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
	return utils.GetCacheInto(ctx, r.client, key, dest)
}

func (r *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) *app_errors.AppError {
	return utils.SetCacheData(ctx, r.client, key, value, ttl)
}

func (r *RedisCache) Del(ctx context.Context, key string) *app_errors.AppError {
	if err := utils.DeleteCacheData(ctx, r.client, key); err != nil {
		return app_errors.NewInternal(err)
	}
	return nil
}

func (r *RedisCache) Exists(ctx context.Context, key string) (bool, *app_errors.AppError) {
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, app_errors.NewInternal(err)
	}
	return n > 0, nil
}
