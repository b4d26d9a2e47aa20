package utils

import (
	"context"
	"errors"
	"time"

	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// GetCacheInto liest cacheKey aus Redis und dekodiert den JSON-Wert in dest.
// Rückgabe: false ohne Fehler bei Cache-Miss.
func GetCacheInto(ctx context.Context, rdb *redis.Client, cacheKey string, dest any) (bool, *app_errors.AppError) {
	val, err := rdb.Get(ctx, cacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	} else if err != nil {
		return false, app_errors.NewInternal(err)
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, app_errors.NewInternal(err)
	}
	return true, nil
}

// SetCacheData serialisiert data als JSON und speichert es mit Ablaufzeit in Redis.
func SetCacheData(ctx context.Context, rdb *redis.Client, cacheKey string, data any, expire time.Duration) *app_errors.AppError {
	bytes, err := json.Marshal(data)
	if err != nil {
		return app_errors.NewInternal(err)
	}

	if err := rdb.Set(ctx, cacheKey, bytes, expire).Err(); err != nil {
		return app_errors.NewInternal(err)
	}

	return nil
}

// DeleteCacheData löscht cacheKey; ein fehlender Key ist kein Fehler.
func DeleteCacheData(ctx context.Context, rdb *redis.Client, cacheKey string) error {
	return rdb.Del(ctx, cacheKey).Err()
}

func SettingsCacheKey(companyID string) string {
	return "task_settings:" + companyID
}

func RevokedTokenKey(jti string) string {
	return "revoked_token:" + jti
}
