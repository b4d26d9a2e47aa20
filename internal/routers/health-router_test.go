package routers

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

// unreachableRedis zeigt auf einen Port, auf dem niemand lauscht.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
}

// Test liveness endpoints answer without touching dependencies
func TestHealthRouter_Liveness(t *testing.T) {
	app := fiber.New()
	rdb := unreachableRedis()
	defer rdb.Close()
	HealthRouter(app, fakePinger{err: errors.New("down")}, rdb)

	for _, path := range []string{"/healthz", "/livez"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

// Test readiness fails while redis is unreachable
func TestHealthRouter_ReadyzRedisDown(t *testing.T) {
	app := fiber.New()
	rdb := unreachableRedis()
	defer rdb.Close()
	HealthRouter(app, fakePinger{}, rdb)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/readyz", nil), 2000)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
